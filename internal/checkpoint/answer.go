package checkpoint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnswerKind identifies the shape of an answer field.
type AnswerKind int

const (
	// AnswerAbsent means the answer key was missing or null.
	AnswerAbsent AnswerKind = iota
	// AnswerSingle means the answer was a single text value.
	AnswerSingle
	// AnswerMultiple means the answer was a list of text values.
	AnswerMultiple
)

// Answer is the tagged representation of a record's answer field: absent,
// a single text value, or an ordered list of text values. The zero value
// is the absent answer.
type Answer struct {
	kind     AnswerKind
	single   string
	multiple []string
}

// SingleAnswer builds a single-valued answer.
func SingleAnswer(value string) Answer {
	return Answer{kind: AnswerSingle, single: value}
}

// MultipleAnswer builds a list-valued answer.
func MultipleAnswer(values ...string) Answer {
	return Answer{kind: AnswerMultiple, multiple: values}
}

// Kind returns the answer's shape tag.
func (answer Answer) Kind() AnswerKind {
	return answer.kind
}

// Empty reports whether the answer carries no usable value: absent, a
// single empty string, or an empty list.
func (answer Answer) Empty() bool {
	switch answer.kind {
	case AnswerSingle:
		return answer.single == ""
	case AnswerMultiple:
		return len(answer.multiple) == 0
	default:
		return true
	}
}

// IsLiteral reports whether the answer is the given single text value.
func (answer Answer) IsLiteral(text string) bool {
	return answer.kind == AnswerSingle && answer.single == text
}

// Values returns the answer values in order. Absent answers yield nil.
func (answer Answer) Values() []string {
	switch answer.kind {
	case AnswerSingle:
		return []string{answer.single}
	case AnswerMultiple:
		return answer.multiple
	default:
		return nil
	}
}

// UnmarshalJSON accepts a string, a list of strings, or null.
func (answer *Answer) UnmarshalJSON(data []byte) error {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parse answer: %w", err)
	}
	switch probe.(type) {
	case nil:
		*answer = Answer{}
		return nil
	case string:
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*answer = SingleAnswer(value)
		return nil
	case []interface{}:
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("answer list must contain only text: %w", err)
		}
		*answer = MultipleAnswer(values...)
		return nil
	default:
		return fmt.Errorf("answer must be text or a list of text, got %T", probe)
	}
}

// UnmarshalYAML accepts a scalar, a sequence of scalars, or null.
func (answer *Answer) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*answer = Answer{}
			return nil
		}
		var value string
		if err := node.Decode(&value); err != nil {
			return err
		}
		*answer = SingleAnswer(value)
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("line %d: answer list must contain only text: %w", node.Line, err)
		}
		*answer = MultipleAnswer(values...)
		return nil
	default:
		return fmt.Errorf("line %d: answer must be text or a list of text", node.Line)
	}
}

// MarshalJSON restores the on-disk shape for report output.
func (answer Answer) MarshalJSON() ([]byte, error) {
	switch answer.kind {
	case AnswerSingle:
		return json.Marshal(answer.single)
	case AnswerMultiple:
		return json.Marshal(answer.multiple)
	default:
		return []byte("null"), nil
	}
}
