package render

import "qlint/internal/lint"

// Result pairs one checkpoint file with its validation outcome. A
// non-empty LoadError means the file never produced a per-record report.
type Result struct {
	File      string      `json:"file"`
	LoadError string      `json:"load_error,omitempty"`
	Report    lint.Report `json:"report"`
}

// Failed reports whether the file should fail the run: either it did not
// load, or validation found at least one error.
func (result Result) Failed() bool {
	if result.LoadError != "" {
		return true
	}
	return !result.Report.Summary.Pass
}
