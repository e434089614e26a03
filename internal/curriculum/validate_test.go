package curriculum_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/dsagen/internal/curriculum"
)

func TestValidateFile_Valid(t *testing.T) {
	path := writeCourse(t, "course.json", sampleCourseJSON)

	if err := curriculum.ValidateFile(path); err != nil {
		t.Errorf("ValidateFile() error = %v", err)
	}
}

func TestValidateFile_ValidYAML(t *testing.T) {
	path := writeCourse(t, "course.yaml", `
course_name: DSA
modules:
  - title: M1
    topics:
      - title: Arrays
`)

	if err := curriculum.ValidateFile(path); err != nil {
		t.Errorf("ValidateFile() error = %v", err)
	}
}

func TestValidateFile_WrongShape(t *testing.T) {
	// key_points must be a list of strings, not a string.
	path := writeCourse(t, "bad.json", `{
  "modules": [{"title": "M1", "topics": [{"title": "Arrays", "key_points": "contiguous"}]}]
}`)

	if err := curriculum.ValidateFile(path); err == nil {
		t.Error("ValidateFile() expected schema error for string key_points")
	}
}

func TestValidateFile_MissingTopicTitle(t *testing.T) {
	path := writeCourse(t, "bad.json", `{
  "modules": [{"title": "M1", "topics": [{"content": "no title"}]}]
}`)

	if err := curriculum.ValidateFile(path); err == nil {
		t.Error("ValidateFile() expected schema error for missing topic title")
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	err := curriculum.ValidateFile(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, curriculum.ErrNotFound) {
		t.Errorf("ValidateFile() error = %v, want ErrNotFound", err)
	}
}
