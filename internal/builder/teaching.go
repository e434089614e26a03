package builder

import (
	"fmt"
	"strings"
)

// defaultContent stands in for topics authored without a content field.
const defaultContent = "This is an important Data Structures and Algorithms concept."

// Static section text. The acknowledgement and analogy are the only
// sections enrichment may replace; everything else is fixed.
const (
	defaultAcknowledgement = "It's completely okay to be at this stage. Let's understand this step by step."
	defaultAnalogy         = "Think of this concept like organizing items efficiently so you can find them quickly."
)

const teachingSteps = `STEP-BY-STEP EXPLANATION:
1. Understand the problem this concept solves.
2. Learn how it works internally.
3. Apply it efficiently in real problems.

ASCII DIAGRAM:
Input  ->  Processing  ->  Output
`

const teachingFooter = `TIME COMPLEXITY:
O(n) - Linear time complexity

SPACE COMPLEXITY:
O(1) - Constant space complexity

KEY TAKEAWAYS:
• Understand the core concept
• Practice with examples
• Apply in problem-solving`

// teachingVariation holds the tone-sensitive sections of a teaching
// response. The zero value is replaced by the static defaults.
type teachingVariation struct {
	Acknowledgement string
	Analogy         string
}

// buildTeachingText renders the fixed-structure tutor response for one
// topic and emotion profile. The section order and wording are part of
// the training-data contract; downstream fine-tuning fixtures depend on
// the exact bytes.
func buildTeachingText(title, content string, p Profile, v teachingVariation) string {
	ack := v.Acknowledgement
	if ack == "" {
		ack = defaultAcknowledgement
	}
	analogy := v.Analogy
	if analogy == "" {
		analogy = defaultAnalogy
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Student Emotion: %s\n", p.Emotion)
	fmt.Fprintf(&b, "Tutor Tone: %s\n\n", p.Tone)
	fmt.Fprintf(&b, "Question: Explain %s\n\n", title)

	fmt.Fprintf(&b, "ACKNOWLEDGEMENT:\n%s\n\n", ack)
	fmt.Fprintf(&b, "DEFINITION:\n%s\n\n", content)
	fmt.Fprintf(&b, "INTUITION / REAL-WORLD ANALOGY:\n%s\n\n", analogy)

	b.WriteString(teachingSteps)
	b.WriteString("\n")

	b.WriteString("CODE (C++):\n")
	b.WriteString("```cpp\n")
	b.WriteString("// Example implementation\n")
	b.WriteString("#include <iostream>\n")
	b.WriteString("using namespace std;\n\n")
	b.WriteString("int main() {\n")
	fmt.Fprintf(&b, "    // %s implementation\n", title)
	fmt.Fprintf(&b, "    cout << \"Hello %s\" << endl;\n", title)
	b.WriteString("    return 0;\n")
	b.WriteString("}\n")
	b.WriteString("```\n\n")

	b.WriteString(teachingFooter)

	return b.String()
}
