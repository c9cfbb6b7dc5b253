package annotate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// RenderOptions controls Render output.
type RenderOptions struct {
	// Color paints labels; see ShouldColor
	Color bool
	// LineNumbers prefixes each line with its one-based number
	LineNumbers bool
	// OnlyAnnotated skips lines without an annotation
	OnlyAnnotated bool
}

// ShouldColor reports whether w is a terminal.
func ShouldColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes text to w with each annotation label appended to the end
// of its line.
func Render(w io.Writer, text string, anns []Annotation, opts RenderOptions) error {
	labels := make(map[int][]string, len(anns))
	for _, a := range anns {
		labels[a.Line] = append(labels[a.Line], a.Label)
	}

	label := color.New(color.FgHiGreen, color.Italic)
	dim := color.New(color.Faint)
	if opts.Color {
		label.EnableColor()
		dim.EnableColor()
	} else {
		label.DisableColor()
		dim.DisableColor()
	}

	bw := bufio.NewWriter(w)
	lines := strings.Split(text, "\n")
	width := len(fmt.Sprint(len(lines)))

	for i, line := range lines {
		ls, annotated := labels[i]
		if opts.OnlyAnnotated && !annotated {
			continue
		}

		if opts.LineNumbers {
			_, _ = dim.Fprintf(bw, "%*d ", width, i+1)
		}
		_, _ = bw.WriteString(line)
		if annotated {
			_, _ = bw.WriteString("  ")
			_, _ = label.Fprint(bw, strings.Join(ls, "  "))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
