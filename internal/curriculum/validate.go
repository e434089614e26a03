package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://course.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateFile checks a course file against the course schema.
// The returned error carries the validator's per-field detail.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read course file: %w", err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse course YAML %s: %w", path, err)
		}
		// Round-trip through JSON so the validator sees the same value
		// shapes a JSON document would produce.
		doc, err = normalize(doc)
		if err != nil {
			return err
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse course JSON %s: %w", path, err)
		}
	}

	schema, err := compiled()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("course schema validation failed: %w", err)
	}
	return nil
}

// compiled returns the compiled course schema, building it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := normalize(courseSchema)
		if err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// normalize marshals v to JSON and back so the validator receives a
// plain any representation regardless of the original decoder.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return out, nil
}
