package render

import (
	"bytes"
	"encoding/json"
	"testing"
)

// TestWriteJSON verifies the JSON document decodes back with its counts.
func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	if err := WriteJSON(&out, []Result{sampleResult()}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded []struct {
		File   string `json:"file"`
		Report struct {
			Summary struct {
				Records  int  `json:"records"`
				Errors   int  `json:"errors"`
				Warnings int  `json:"warnings"`
				Pass     bool `json:"pass"`
			} `json:"summary"`
		} `json:"report"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded) != 1 || decoded[0].File != "checkpoint.json" {
		t.Fatalf("unexpected document: %+v", decoded)
	}
	summary := decoded[0].Report.Summary
	if summary.Records != 3 || summary.Errors != 1 || summary.Warnings != 1 || summary.Pass {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
