package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/comment/style"
	"github.com/dshills/commentary/internal/comment/toggle"
)

func newToggleCommand(global *globalOptions) *cobra.Command {
	var (
		lines     string
		lang      string
		styleType string
		out       editOutput
		opts      toggle.Options
	)

	cmd := &cobra.Command{
		Use:   "toggle FILE",
		Short: "Comment or uncomment a line range",
		Long: `Toggle comments on a line range. A fully commented range is
uncommented; anything else is commented. Use --comment or --uncomment to
force the direction.

The edited file is printed to stdout unless --write or --diff is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if styleType != "" {
				k, err := style.ParseKind(styleType)
				if err != nil {
					return err
				}
				opts.StyleType = k
			}

			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			n, doc, err := a.open(args[0], lang)
			if err != nil {
				return err
			}
			start, end, err := parseLines(lines, doc.LineCount())
			if err != nil {
				return err
			}

			before := doc.Text()
			res, err := a.engine.ToggleRange(n, start, end, opts)
			if err != nil {
				return err
			}
			report(cmd.ErrOrStderr(), res.OK, res.Message)
			if !res.OK {
				return ErrFailed
			}
			return out.emit(cmd.OutOrStdout(), doc, before)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&lines, "lines", "l", "", "line range A:B (default: whole file)")
	f.StringVar(&lang, "lang", "", "language key (default: detected from the file name)")
	f.StringVarP(&styleType, "style", "s", "", "comment style to add: line or block")
	f.BoolVar(&opts.ForceComment, "comment", false, "always comment")
	f.BoolVar(&opts.ForceUncomment, "uncomment", false, "always uncomment")
	f.BoolVarP(&out.write, "write", "w", false, "write the result back to the file")
	f.BoolVarP(&out.diff, "diff", "d", false, "print a unified diff")
	cmd.MarkFlagsMutuallyExclusive("comment", "uncomment")

	return cmd
}
