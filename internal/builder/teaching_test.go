package builder

import (
	"strings"
	"testing"
)

func TestBuildTeachingText_Sections(t *testing.T) {
	p := Profile{Emotion: "confused", Tone: "calm, slow, reassuring"}
	text := buildTeachingText("Arrays", "A sequence of elements.", p, teachingVariation{})

	wantFragments := []string{
		"Student Emotion: confused",
		"Tutor Tone: calm, slow, reassuring",
		"Question: Explain Arrays",
		"ACKNOWLEDGEMENT:\n" + defaultAcknowledgement,
		"DEFINITION:\nA sequence of elements.",
		"INTUITION / REAL-WORLD ANALOGY:\n" + defaultAnalogy,
		"STEP-BY-STEP EXPLANATION:",
		"ASCII DIAGRAM:\nInput  ->  Processing  ->  Output",
		"CODE (C++):\n```cpp",
		"// Arrays implementation",
		"cout << \"Hello Arrays\" << endl;",
		"TIME COMPLEXITY:\nO(n) - Linear time complexity",
		"SPACE COMPLEXITY:\nO(1) - Constant space complexity",
		"KEY TAKEAWAYS:",
		"• Understand the core concept",
	}

	for _, want := range wantFragments {
		if !strings.Contains(text, want) {
			t.Errorf("missing fragment %q", want)
		}
	}
}

func TestBuildTeachingText_SectionOrder(t *testing.T) {
	p := Profile{Emotion: "neutral", Tone: "clear, structured"}
	text := buildTeachingText("Stacks", "LIFO structure.", p, teachingVariation{})

	sections := []string{
		"Student Emotion:",
		"Question: Explain",
		"ACKNOWLEDGEMENT:",
		"DEFINITION:",
		"INTUITION / REAL-WORLD ANALOGY:",
		"STEP-BY-STEP EXPLANATION:",
		"ASCII DIAGRAM:",
		"CODE (C++):",
		"TIME COMPLEXITY:",
		"SPACE COMPLEXITY:",
		"KEY TAKEAWAYS:",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		if idx < 0 {
			t.Fatalf("missing section %q", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestBuildTeachingText_VariationSubstitutes(t *testing.T) {
	p := Profile{Emotion: "frustrated", Tone: "supportive, motivating"}
	v := teachingVariation{
		Acknowledgement: "Hitting a wall is part of learning this.",
		Analogy:         "Like a stack of plates: you only touch the top one.",
	}
	text := buildTeachingText("Stacks", "LIFO structure.", p, v)

	if !strings.Contains(text, "ACKNOWLEDGEMENT:\nHitting a wall is part of learning this.") {
		t.Error("custom acknowledgement not substituted")
	}
	if !strings.Contains(text, "ANALOGY:\nLike a stack of plates: you only touch the top one.") {
		t.Error("custom analogy not substituted")
	}
	if strings.Contains(text, defaultAcknowledgement) {
		t.Error("default acknowledgement should be replaced")
	}

	// The body below the analogy never varies.
	if !strings.Contains(text, "STEP-BY-STEP EXPLANATION:\n1. Understand the problem this concept solves.") {
		t.Error("fixed steps section altered")
	}
}

func TestBuildTeachingText_IdenticalBodyAcrossEmotions(t *testing.T) {
	var bodies []string
	for _, p := range Profiles() {
		text := buildTeachingText("Queues", "FIFO structure.", p, teachingVariation{})
		// Strip the two header lines; the rest must not vary by emotion.
		_, body, ok := strings.Cut(text, "\n\n")
		if !ok {
			t.Fatal("unexpected text shape")
		}
		bodies = append(bodies, body)
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("body for %s differs from %s", Profiles()[i].Emotion, Profiles()[0].Emotion)
		}
	}
}
