package checkpoint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one question entry in a checkpoint file. Records are never
// mutated after loading; validation reads them only.
type Record struct {
	Question    string
	HasQuestion bool
	Choices     []string
	Answer      Answer
	Type        string
	Img         string
	HasImg      bool
}

// recordFields mirrors the on-disk shape of a record. Unknown keys are
// allowed: checkpoint files carry presentation extras the linter ignores.
type recordFields struct {
	Question *string  `json:"question" yaml:"question"`
	Choices  []string `json:"choices" yaml:"choices"`
	Answer   Answer   `json:"answer" yaml:"answer"`
	Type     *string  `json:"type" yaml:"type"`
	Img      *string  `json:"img" yaml:"img"`
}

// UnmarshalJSON decodes a record while tracking key presence for the
// fields whose absence is itself a lintable condition.
func (record *Record) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("question entry must be an object: %w", err)
	}
	var fields recordFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	_, hasQuestion := keys["question"]
	_, hasImg := keys["img"]
	*record = fromFields(fields, hasQuestion, hasImg)
	return nil
}

// UnmarshalYAML decodes a record from a YAML mapping node.
func (record *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: question entry must be a mapping", node.Line)
	}
	var fields recordFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	hasQuestion := mappingHasKey(node, "question")
	hasImg := mappingHasKey(node, "img")
	*record = fromFields(fields, hasQuestion, hasImg)
	return nil
}

func fromFields(fields recordFields, hasQuestion, hasImg bool) Record {
	record := Record{
		HasQuestion: hasQuestion,
		Choices:     fields.Choices,
		Answer:      fields.Answer,
		Type:        "regular",
		HasImg:      hasImg,
	}
	if fields.Question != nil {
		record.Question = *fields.Question
	}
	if fields.Type != nil {
		record.Type = *fields.Type
	}
	if fields.Img != nil {
		record.Img = *fields.Img
	}
	return record
}

func mappingHasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
