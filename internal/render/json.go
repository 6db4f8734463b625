package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes all file results as one pretty-printed JSON document.
func WriteJSON(w io.Writer, results []Result) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
