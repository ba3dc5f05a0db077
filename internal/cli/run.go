package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/plugin"
	"github.com/dshills/commentary/internal/plugin/lua"
)

func newRunCommand(global *globalOptions) *cobra.Command {
	var (
		lang    string
		timeout time.Duration
		out     editOutput
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT FILE",
		Short: "Run a Lua script against a file",
		Long: `Run a Lua script with FILE open as the current buffer. SCRIPT is a
path or the name of a script in ~/.config/commentary/scripts or
./.commentary/scripts. The script uses the global "comment" table:

  comment.toggle(0, 1, 3)
  local state = comment.analyze(0, 1, 3)
  comment.group(function() ... end)

print writes to stderr. The edited file is printed to stdout unless
--write or --diff is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			n, doc, err := a.open(args[1], lang)
			if err != nil {
				return err
			}

			state := lua.NewState(lua.WithTimeout(timeout), lua.WithOutput(cmd.ErrOrStderr()))
			defer state.Close()
			if err := state.Register(lua.NewCommentModule(a.engine, a.workspace, n)); err != nil {
				return err
			}

			script, err := plugin.NewLoader().Resolve(args[0])
			if err != nil {
				return err
			}

			before := doc.Text()
			if err := state.DoFile(signalContext(cmd), script); err != nil {
				return err
			}
			return out.emit(cmd.OutOrStdout(), doc, before)
		},
	}

	f := cmd.Flags()
	f.StringVar(&lang, "lang", "", "language key (default: detected from the file name)")
	f.DurationVar(&timeout, "timeout", lua.DefaultTimeout, "maximum script run time (0 disables)")
	f.BoolVarP(&out.write, "write", "w", false, "write the result back to the file")
	f.BoolVarP(&out.diff, "diff", "d", false, "print a unified diff")

	return cmd
}
