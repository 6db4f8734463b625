package lint

import "qlint/internal/checkpoint"

// ruleFuncs lists the per-record checks in reporting order. The order
// affects message ordering only, never the verdict.
var ruleFuncs = []func(checkpoint.Record, *issueCollector){
	checkQuestionText,
	checkAnswerPresence,
	checkAnswerInChoices,
	checkImageURL,
	checkSpecialType,
}

// Validate applies every rule to every record and aggregates the result.
// It is a pure function of its input: records are never mutated and all
// records are always fully evaluated.
func Validate(records []checkpoint.Record) Report {
	report := Report{Records: make([]RecordReport, 0, len(records))}
	for i, record := range records {
		collector := &issueCollector{}
		for _, rule := range ruleFuncs {
			rule(record, collector)
		}
		report.Records = append(report.Records, RecordReport{
			Index:    i + 1,
			Errors:   collector.errors,
			Warnings: collector.warnings,
		})
	}
	report.Summary = summarize(report.Records)
	return report
}
