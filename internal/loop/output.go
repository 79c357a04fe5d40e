package loop

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/itsmostafa/rpncalc/internal/calc"
)

// styles are bound to the writer they render for, so color is decided
// per stream rather than from stdout alone.
type styles struct {
	title   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	box     lipgloss.Style
	banner  lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		// bold red headers
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		// muted metadata text
		dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
		success: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		err: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		// summary box with rounded border
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1),
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
	}
}

// FormatBanner renders the interactive session greeting
func FormatBanner(w io.Writer, noColor bool) {
	s := newStyles(w, noColor)
	fmt.Fprintln(w, s.banner.Render("Enter commands (or 'exit' to quit):"))
}

// FormatPrompt writes the interactive prompt without a newline
func FormatPrompt(w io.Writer, noColor bool) {
	s := newStyles(w, noColor)
	fmt.Fprint(w, s.dim.Render(">")+" ")
}

// FormatError renders err as "Error: <message>", followed by command
// suggestions when the factory produced any.
func FormatError(w io.Writer, err error, noColor bool) {
	s := newStyles(w, noColor)

	msg := err.Error()
	var ce *calc.Error
	if errors.As(err, &ce) && len(ce.Suggestions) > 0 {
		msg += " " + s.dim.Render(fmt.Sprintf("(did you mean %s?)", strings.Join(ce.Suggestions, ", ")))
	}

	fmt.Fprintf(w, "%s %s\n", s.err.Render("Error:"), msg)
}

// FormatRerun renders the notice printed before a watched file is run again
func FormatRerun(w io.Writer, name string, noColor bool) {
	s := newStyles(w, noColor)
	fmt.Fprintln(w, s.dim.Render("── "+name+" changed, re-running"))
}

// FormatSummary renders the end-of-run summary box
func FormatSummary(w io.Writer, stats *Stats, precision int, noColor bool) {
	s := newStyles(w, noColor)

	var status string
	if stats.Errors > 0 {
		status = s.err.Render(fmt.Sprintf("%d errors", stats.Errors))
	} else {
		status = s.success.Render("OK")
	}

	line1 := fmt.Sprintf("%s %d  %s %d  %s",
		s.dim.Render("Lines:"), stats.Lines,
		s.dim.Render("Commands:"), stats.Commands,
		status,
	)

	values := make([]string, len(stats.Stack))
	for i, v := range stats.Stack {
		values[i] = calc.FormatValue(v, precision)
	}
	line2 := fmt.Sprintf("%s [%s]", s.dim.Render("Stack:"), strings.Join(values, " "))

	content := s.title.Render("Run Complete") + "\n" + line1 + "\n" + line2
	if len(stats.Params) > 0 {
		content += "\n" + s.dim.Render("Params:") + " " + formatParams(stats.Params, precision)
	}

	fmt.Fprintln(w, s.box.Render(content))
}

// formatParams lists parameters sorted by name
func formatParams(params map[string]float64, precision int) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + calc.FormatValue(params[name], precision)
	}
	return strings.Join(parts, " ")
}
