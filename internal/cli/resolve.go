package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/style"
)

func newResolveCommand(global *globalOptions) *cobra.Command {
	var (
		template string
		markup   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve LANG",
		Short: "Show the comment style used for a language",
		Long: `Resolve the comment style for a language key through the registry,
the user overrides and, when given, a printf-style template such as "# %s".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			req := resolve.Request{Language: args[0], Template: template}
			if markup {
				req.Syntax = markupContext{}
			}
			res, ok := a.resolver.Resolve(req)
			if !ok {
				report(cmd.ErrOrStderr(), false, fmt.Sprintf("no comment style for %q", args[0]))
				return ErrFailed
			}
			printResolution(cmd.OutOrStdout(), res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&template, "template", "t", "", "fallback comment template, e.g. \"# %s\"")
	f.BoolVar(&markup, "markup", false, "resolve the form used inside embedded markup (JSX)")

	return cmd
}

// markupContext reports every position as markup.
type markupContext struct{}

func (markupContext) StyleAt(resolve.Position) (style.CommentStyle, bool) {
	return style.CommentStyle{}, false
}

func (markupContext) IsMarkupContext(resolve.Position) bool { return true }

func printResolution(w io.Writer, res resolve.Resolution) {
	st := newStyles()
	s := res.Style
	row := func(key, value string) {
		fmt.Fprintf(w, "%-8s %s\n", st.header.Render(key), value)
	}

	line := st.muted.Render("-")
	if s.HasLine() {
		line = s.Line
	}
	block := st.muted.Render("-")
	if s.HasBlock() {
		block = s.Block.Start + " " + s.Block.End
	}
	source := res.Source.String()
	if res.Overridden {
		source += " (overridden)"
	}

	row("line", line)
	row("block", block)
	row("nesting", fmt.Sprint(s.Nesting))
	row("markup", fmt.Sprint(s.Markup))
	row("source", source)
}
