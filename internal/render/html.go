package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// BuildReportHTML renders the report page for all file results into a
// string suitable for writing to disk.
func BuildReportHTML(results []Result) (string, error) {
	var builder strings.Builder
	if err := reportPage(results).Render(context.Background(), &builder); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return builder.String(), nil
}

// reportPage is the top-level HTML report component.
func reportPage(results []Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>Checkpoint Lint Report</title>"+reportStyle+"</head><body><h1>Checkpoint Lint Report</h1>"); err != nil {
			return err
		}
		for _, result := range results {
			if err := fileSection(result).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// fileSection renders the report block for one checkpoint file.
func fileSection(result Result) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<section><h2>%s</h2>", templ.EscapeString(result.File)); err != nil {
			return err
		}
		if result.LoadError != "" {
			_, err := fmt.Fprintf(w, "<p class=\"error\">%s</p><p class=\"fail\">FAIL</p></section>", templ.EscapeString(result.LoadError))
			return err
		}
		summary := result.Report.Summary
		if _, err := fmt.Fprintf(w, "<p>%d question(s), %d error(s), %d warning(s)</p><ul>", summary.Records, summary.Errors, summary.Warnings); err != nil {
			return err
		}
		for _, record := range result.Report.Records {
			if record.Clean() {
				continue
			}
			if len(record.Errors) > 0 {
				if _, err := fmt.Fprintf(w, "<li class=\"error\">Question %d: %s</li>", record.Index, templ.EscapeString(record.ErrorLine())); err != nil {
					return err
				}
			}
			if len(record.Warnings) > 0 {
				if _, err := fmt.Fprintf(w, "<li class=\"warning\">Question %d: %s</li>", record.Index, templ.EscapeString(record.WarningLine())); err != nil {
					return err
				}
			}
		}
		verdict := "<p class=\"pass\">PASS</p>"
		if !summary.Pass {
			verdict = "<p class=\"fail\">FAIL</p>"
		}
		_, err := io.WriteString(w, "</ul>"+verdict+"</section>")
		return err
	})
}

const reportStyle = "<style>body{font-family:sans-serif;margin:2rem}.error{color:#b00020}.warning{color:#a06000}.pass{color:#087f23;font-weight:bold}.fail{color:#b00020;font-weight:bold}</style>"
