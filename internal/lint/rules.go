package lint

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"qlint/internal/checkpoint"
)

const (
	// minQuestionRunes is the exclusive lower bound for question length.
	minQuestionRunes = 5
	// unknownAnswer is the sentinel placeholder for an unresolved answer.
	unknownAnswer = "Unknown"
	// specialAnswer is the fixed answer text expected on special questions.
	specialAnswer = "See image for the answer"
)

// issueCollector accumulates errors and warnings for one record.
type issueCollector struct {
	errors   []string
	warnings []string
}

func (collector *issueCollector) errorf(format string, args ...interface{}) {
	collector.errors = append(collector.errors, fmt.Sprintf(format, args...))
}

func (collector *issueCollector) warnf(format string, args ...interface{}) {
	collector.warnings = append(collector.warnings, fmt.Sprintf(format, args...))
}

// checkQuestionText requires a question field with more than five
// characters of trimmed text.
func checkQuestionText(record checkpoint.Record, collector *issueCollector) {
	if !record.HasQuestion {
		collector.errorf("Missing 'question' field")
		return
	}
	text := strings.TrimSpace(record.Question)
	if length := utf8.RuneCountInString(text); length <= minQuestionRunes {
		collector.errorf("Question too short (%d chars): '%s'", length, text)
	}
}

// checkAnswerPresence requires records with choices to carry a real
// answer key.
func checkAnswerPresence(record checkpoint.Record, collector *issueCollector) {
	if len(record.Choices) == 0 {
		return
	}
	if record.Answer.Empty() {
		collector.errorf("Has choices but no answer key")
		return
	}
	if record.Answer.IsLiteral(unknownAnswer) {
		collector.errorf("Answer is '%s'", unknownAnswer)
	}
}

// checkAnswerInChoices requires every answer value of a non-special
// record to appear among the choices, one error per missing value.
func checkAnswerInChoices(record checkpoint.Record, collector *issueCollector) {
	if record.Answer.Empty() || record.Answer.IsLiteral(unknownAnswer) || record.Type == "special" {
		return
	}
	choiceSet := make(map[string]struct{}, len(record.Choices))
	for _, choice := range record.Choices {
		choiceSet[choice] = struct{}{}
	}
	for _, value := range record.Answer.Values() {
		if _, ok := choiceSet[value]; !ok {
			collector.errorf("Answer '%s' not found in choices", value)
		}
	}
}

// checkImageURL requires a present img field to be a parseable URL with
// both a scheme and a host. Parse failures count as invalid.
func checkImageURL(record checkpoint.Record, collector *issueCollector) {
	if !record.HasImg {
		return
	}
	if !isValidURL(record.Img) {
		collector.errorf("Invalid image URL: '%s'", record.Img)
	}
}

// checkSpecialType warns on special questions that deviate from the
// fixed convention: no choices, answer set to the fixed text.
func checkSpecialType(record checkpoint.Record, collector *issueCollector) {
	if record.Type != "special" {
		return
	}
	if len(record.Choices) > 0 {
		collector.warnf("Special question has choices (should be empty)")
	}
	if !record.Answer.IsLiteral(specialAnswer) {
		collector.warnf("Special question should have answer '%s'", specialAnswer)
	}
}

func isValidURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
