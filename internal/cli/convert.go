package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/comment/style"
)

func newConvertCommand(global *globalOptions) *cobra.Command {
	var (
		lines string
		lang  string
		to    string
		out   editOutput
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a commented range between line and block comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := style.ParseKind(to)
			if err != nil {
				return err
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
			res, err := a.engine.ConvertRange(n, start, end, kind)
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
	f.StringVar(&to, "to", "", "target style: line or block")
	f.BoolVarP(&out.write, "write", "w", false, "write the result back to the file")
	f.BoolVarP(&out.diff, "diff", "d", false, "print a unified diff")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
