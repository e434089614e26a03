package builder

import (
	"strings"
	"testing"

	"github.com/abhisek/dsagen/internal/curriculum"
)

func TestDefinitionText(t *testing.T) {
	got := definitionText("Arrays", "A sequence of elements.")
	want := "Question: What is Arrays?\nAnswer: A sequence of elements."
	if got != want {
		t.Errorf("definitionText() = %q, want %q", got, want)
	}
}

func TestKeyPointsText(t *testing.T) {
	got := keyPointsText("Arrays", []string{"Contiguous memory", "O(1) access"})
	want := "Question: What are the key points of Arrays?\nAnswer:\n• Contiguous memory\n• O(1) access"
	if got != want {
		t.Errorf("keyPointsText() = %q, want %q", got, want)
	}
}

func TestCodeExampleText(t *testing.T) {
	got := codeExampleText("Arrays", curriculum.CodeExample{
		Code:   "int a[3];",
		Output: "ok",
	})

	if !strings.Contains(got, "Question: Show me code example for Arrays") {
		t.Error("missing question line")
	}
	if !strings.Contains(got, "```cpp\nint a[3];\n```") {
		t.Error("code not fenced verbatim")
	}
	if !strings.HasSuffix(got, "Output: ok") {
		t.Errorf("missing output line, got %q", got)
	}
}

func TestCodeExampleText_MissingOutput(t *testing.T) {
	got := codeExampleText("Arrays", curriculum.CodeExample{Code: "int a[3];"})
	if !strings.HasSuffix(got, "Output: N/A") {
		t.Errorf("want N/A placeholder, got %q", got)
	}
}

func TestVideoText(t *testing.T) {
	got := videoText("Arrays", curriculum.VideoRef{
		Title:      "Arrays 101",
		YoutubeURL: "https://youtu.be/x",
	})
	want := "Question: Where can I learn about Arrays?\nAnswer: Watch this video: Arrays 101 - https://youtu.be/x"
	if got != want {
		t.Errorf("videoText() = %q, want %q", got, want)
	}
}
