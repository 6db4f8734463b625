package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// TextOptions controls the plain-text renderer.
type TextOptions struct {
	NoColor bool
}

var (
	headerColor  = lipgloss.Color("33")
	errorColor   = lipgloss.Color("196")
	warningColor = lipgloss.Color("214")
	passColor    = lipgloss.Color("42")
	summaryColor = lipgloss.Color("242")
)

// WriteText writes the human-readable report for one file: a header, the
// question count, one line per offending record, and a summary block.
func WriteText(w io.Writer, result Result, opts TextOptions) {
	fmt.Fprintln(w, stylize("Validating: "+result.File, opts.NoColor, headerColor))
	if result.LoadError != "" {
		fmt.Fprintln(w, stylize("ERROR "+result.LoadError, opts.NoColor, errorColor))
		fmt.Fprintln(w, stylize("Verdict: FAIL", opts.NoColor, errorColor))
		return
	}
	summary := result.Report.Summary
	fmt.Fprintf(w, "Total questions: %d\n", summary.Records)
	for _, record := range result.Report.Records {
		if len(record.Errors) > 0 {
			line := fmt.Sprintf("ERROR Question %d: %s", record.Index, record.ErrorLine())
			fmt.Fprintln(w, stylize(line, opts.NoColor, errorColor))
		}
		if len(record.Warnings) > 0 {
			line := fmt.Sprintf("WARN  Question %d: %s", record.Index, record.WarningLine())
			fmt.Fprintln(w, stylize(line, opts.NoColor, warningColor))
		}
	}
	counts := fmt.Sprintf("Summary: %d question(s), %d error(s), %d warning(s)",
		summary.Records, summary.Errors, summary.Warnings)
	fmt.Fprintln(w, stylize(counts, opts.NoColor, summaryColor))
	if summary.Pass {
		fmt.Fprintln(w, stylize("Verdict: PASS", opts.NoColor, passColor))
	} else {
		fmt.Fprintln(w, stylize("Verdict: FAIL", opts.NoColor, errorColor))
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
