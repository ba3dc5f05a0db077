package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalyzeCommand(global *globalOptions) *cobra.Command {
	var (
		lines string
		lang  string
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report whether a line range is commented",
		Long: `Print the comment state of a line range: all, none or mixed,
followed by the number of commented, uncommented and blank lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			res := a.engine.AnalyzeRange(n, start, end)
			if !res.OK {
				report(cmd.ErrOrStderr(), false, res.Message)
				return ErrFailed
			}

			st := newStyles()
			detail := fmt.Sprintf("commented %d, uncommented %d, blank %d", res.Commented, res.Uncommented, res.Blank)
			if res.Wrapped {
				detail += ", block wrapped"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", st.header.Render(res.State.String()), st.muted.Render("("+detail+")"))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&lines, "lines", "l", "", "line range A:B (default: whole file)")
	f.StringVar(&lang, "lang", "", "language key (default: detected from the file name)")

	return cmd
}
