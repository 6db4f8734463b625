package render

import (
	"strings"
	"testing"
)

// TestBuildReportHTML verifies the report page lists issues and verdicts.
func TestBuildReportHTML(t *testing.T) {
	html, err := BuildReportHTML([]Result{sampleResult()})
	if err != nil {
		t.Fatalf("build html: %v", err)
	}
	for _, want := range []string{
		"<h2>checkpoint.json</h2>",
		"3 question(s), 1 error(s), 1 warning(s)",
		"Question 2: Question too short",
		"class=\"fail\"",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected html to contain %q, got:\n%s", want, html)
		}
	}
}

// TestBuildReportHTMLEscapesContent verifies user data is escaped.
func TestBuildReportHTMLEscapesContent(t *testing.T) {
	html, err := BuildReportHTML([]Result{{
		File:      "<script>.json",
		LoadError: "Error loading checkpoint: <b>bad</b>",
	}})
	if err != nil {
		t.Fatalf("build html: %v", err)
	}
	if strings.Contains(html, "<script>.json") || strings.Contains(html, "<b>bad</b>") {
		t.Fatalf("expected escaped content, got:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;.json") {
		t.Fatalf("expected escaped file name, got:\n%s", html)
	}
}
