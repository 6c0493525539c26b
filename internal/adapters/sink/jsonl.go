package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"trip-data-collector/internal/domain"
)

// JSONL appends raw API responses to a newline-delimited JSON file.
//
// Single-writer discipline: nothing here locks the file, so concurrent
// processes appending to the same path are out of scope.
type JSONL struct {
	path string
}

func NewJSONL(path string) *JSONL {
	return &JSONL{path: path}
}

// Append serializes raw as one line and appends it followed by a newline.
// The file is opened in append mode and created if absent; existing content
// is never truncated or reordered.
func (s *JSONL) Append(raw domain.RawResponse) error {
	line, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("append raw response: marshal: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append raw response: open %q: %w", s.path, err)
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("append raw response: write %q: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("append raw response: close %q: %w", s.path, err)
	}

	return nil
}
