package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	diff "github.com/shogoki/gotextdiff"

	"github.com/dshills/commentary/internal/engine"
)

// styles is the CLI color palette.
type styles struct {
	ok     lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
	header lipgloss.Style
	add    lipgloss.Style
	remove lipgloss.Style
	hunk   lipgloss.Style
}

func newStyles() styles {
	return styles{
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#928374")),
		header: lipgloss.NewStyle().Bold(true),
		add:    lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
		remove: lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934")),
		hunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")),
	}
}

// editOutput controls what an editing command does with the result.
type editOutput struct {
	write bool
	diff  bool
}

// emit writes the edited document: to disk with --write, as a unified diff
// with --diff, otherwise as full text on out.
func (o editOutput) emit(out io.Writer, doc *engine.Document, before string) error {
	after := doc.Text()
	if o.diff {
		writeDiff(out, newStyles(), doc.Path(), before, after)
	}
	if o.write {
		if after == before {
			return nil
		}
		return doc.Save()
	}
	if !o.diff {
		_, err := io.WriteString(out, after)
		return err
	}
	return nil
}

// writeDiff writes a colored unified diff of before and after.
func writeDiff(w io.Writer, st styles, name, before, after string) {
	if before == after {
		return
	}
	text := string(diff.Diff(name, []byte(before), name, []byte(after)))
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "):
			fmt.Fprintln(w, st.header.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, st.hunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, st.add.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, st.remove.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// report writes a one-line status message.
func report(w io.Writer, ok bool, msg string) {
	st := newStyles()
	if ok {
		fmt.Fprintln(w, st.ok.Render("✓")+" "+msg)
		return
	}
	fmt.Fprintln(w, st.fail.Render("✗")+" "+msg)
}
