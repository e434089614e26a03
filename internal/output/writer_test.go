package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abhisek/dsagen/internal/builder"
	"github.com/abhisek/dsagen/internal/output"
)

func sampleRecords() []builder.Record {
	return []builder.Record{
		{Subject: "DSA", Module: "M1", Topic: "Arrays", Emotion: "confused", Text: "Explain Arrays"},
		{Text: "Question: What is Arrays?\nAnswer:\n• A sequence of elements."},
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	records := sampleRecords()

	if err := output.WriteJSON(path, records); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var got []builder.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, records)
	}
}

func TestWriteJSON_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	if err := output.WriteJSON(first, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if err := output.WriteJSON(second, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("two writes of the same records are not byte-identical")
	}
}

func TestWriteJSON_PreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := output.WriteJSON(path, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if !bytes.Contains(data, []byte("•")) {
		t.Error("bullet character was escaped in output")
	}
	if bytes.Contains(data, []byte(`\u`)) {
		t.Errorf("output contains unicode escapes: %s", data)
	}
}

func TestWriteJSON_EmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := output.WriteJSON(path, nil); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got []builder.Record
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got == nil {
		t.Error("empty input should write a JSON array, not null")
	}
}

func TestWriteJSON_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := output.WriteJSON(path, sampleRecords()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if bytes.Contains(data, []byte("stale")) {
		t.Error("existing file was not overwritten")
	}
}

func TestWriteJSON_MetadataFieldsOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := output.WriteJSON(path, []builder.Record{{Text: "q"}}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if bytes.Contains(data, []byte("subject")) || bytes.Contains(data, []byte("emotion")) {
		t.Errorf("question-style record should carry only text: %s", data)
	}
}
