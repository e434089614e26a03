// Package curriculum loads course documents and validates them against
// the course schema.
package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates the course file does not exist.
var ErrNotFound = errors.New("course file not found")

// Load reads and parses a course document. The format is chosen by
// extension: .yaml/.yml is parsed as YAML, everything else as JSON.
func Load(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read course file: %w", err)
	}

	var course Course
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &course); err != nil {
			return nil, fmt.Errorf("parse course YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &course); err != nil {
			return nil, fmt.Errorf("parse course JSON %s: %w", path, err)
		}
	}

	slog.Debug("course loaded",
		"path", path,
		"modules", len(course.Modules),
		"topics", course.TopicCount())

	return &course, nil
}
