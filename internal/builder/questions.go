package builder

import (
	"fmt"
	"strings"

	"github.com/abhisek/dsagen/internal/curriculum"
)

// codeOutputPlaceholder stands in for examples authored without an
// expected output.
const codeOutputPlaceholder = "N/A"

// Question categories, used for summary reporting.
const (
	categoryDefinition = "definition"
	categoryKeyPoints  = "key_points"
	categoryCode       = "code_example"
	categoryVideo      = "video"
)

func definitionText(title, content string) string {
	return fmt.Sprintf("Question: What is %s?\nAnswer: %s", title, content)
}

func keyPointsText(title string, points []string) string {
	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = fmt.Sprintf("• %s", p)
	}
	return fmt.Sprintf("Question: What are the key points of %s?\nAnswer:\n%s",
		title, strings.Join(lines, "\n"))
}

func codeExampleText(title string, ex curriculum.CodeExample) string {
	output := ex.Output
	if output == "" {
		output = codeOutputPlaceholder
	}
	return fmt.Sprintf("Question: Show me code example for %s\nAnswer:\n```cpp\n%s\n```\nOutput: %s",
		title, ex.Code, output)
}

func videoText(title string, v curriculum.VideoRef) string {
	return fmt.Sprintf("Question: Where can I learn about %s?\nAnswer: Watch this video: %s - %s",
		title, v.Title, v.YoutubeURL)
}
