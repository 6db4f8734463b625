package lint

import "strings"

// RecordReport holds the issues found for one question record. Index is
// the 1-based position of the record in the checkpoint file.
type RecordReport struct {
	Index    int      `json:"index"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Clean reports whether the record produced no issues at all.
func (record RecordReport) Clean() bool {
	return len(record.Errors) == 0 && len(record.Warnings) == 0
}

// ErrorLine joins the record's error messages into one reporting line.
func (record RecordReport) ErrorLine() string {
	return strings.Join(record.Errors, "; ")
}

// WarningLine joins the record's warning messages into one reporting line.
func (record RecordReport) WarningLine() string {
	return strings.Join(record.Warnings, "; ")
}

// Summary aggregates issue counts across all records of one run.
type Summary struct {
	Records  int  `json:"records"`
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Pass     bool `json:"pass"`
}

// Report is the full validation result for one checkpoint file. Warnings
// never affect the pass verdict; only errors do.
type Report struct {
	Records []RecordReport `json:"questions"`
	Summary Summary        `json:"summary"`
}

// summarize computes aggregate counts over per-record reports.
func summarize(records []RecordReport) Summary {
	summary := Summary{Records: len(records)}
	for _, record := range records {
		summary.Errors += len(record.Errors)
		summary.Warnings += len(record.Warnings)
	}
	summary.Pass = summary.Errors == 0
	return summary
}
