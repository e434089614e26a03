// Package output serializes record lists to their delivery formats.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/dsagen/internal/builder"
)

// WriteJSON writes records as an indented JSON array to path,
// overwriting any existing file. Non-ASCII characters are preserved
// unescaped. The array is staged in a temp file in the target directory
// and renamed into place, so a failed run never leaves a partial file.
func WriteJSON(path string, records []builder.Record) error {
	if records == nil {
		records = []builder.Record{} // an empty course still writes []
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dsagen-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(records); err != nil {
		tmp.Close()
		return fmt.Errorf("encode records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
