// Package jsonl writes newline-delimited JSON fixture files: one compact
// object per line, no enclosing array, UTF-8.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile serializes each record as one line of compact JSON and writes
// the lines to path, creating parent directories as needed and silently
// truncating any existing file. It returns the number of lines written.
func WriteFile[T any](path string, records []T) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			f.Close()
			return i, fmt.Errorf("encoding record %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return 0, fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}
	return len(records), nil
}
