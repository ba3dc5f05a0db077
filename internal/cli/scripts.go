package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/plugin"
)

func newScriptsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scripts",
		Short: "List Lua scripts available to run by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := plugin.NewLoader()
			scripts, err := l.Discover()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(scripts) == 0 {
				st := newStyles()
				fmt.Fprintln(out, st.muted.Render("no scripts found in:"))
				for _, p := range l.Paths() {
					fmt.Fprintln(out, "  "+p)
				}
				return nil
			}
			for _, s := range scripts {
				fmt.Fprintf(out, "%-20s %s\n", s.Name, s.Path)
			}
			return nil
		},
	}
}
