package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the built-in languages and their comment syntax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LANGUAGE\tLINE\tBLOCK\tNESTING\tPATTERNS")
			reg := a.detection()
			for _, name := range reg.Languages() {
				def, _ := reg.Definition(name)
				s := def.Style
				block := "-"
				if s.HasBlock() {
					block = s.Block.Start + " " + s.Block.End
				}
				line := "-"
				if s.HasLine() {
					line = s.Line
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", name, line, block, s.Nesting, strings.Join(def.Patterns, " "))
			}
			return tw.Flush()
		},
	}
}
