// Package builder turns a loaded course into flat training records.
// One builder serves both historical template styles behind Config.
package builder

// Style selects the record template family.
type Style string

const (
	// StyleEmotion produces one tutor-response record per (topic,
	// emotion profile) pair.
	StyleEmotion Style = "emotion"

	// StyleQuestions produces question/answer records per topic,
	// one per populated content category.
	StyleQuestions Style = "questions"
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	return s == StyleEmotion || s == StyleQuestions
}

// Record is one flattened training unit. Metadata fields are only set
// for emotion-style records; question-style records carry text alone.
type Record struct {
	Subject string `json:"subject,omitempty"`
	Module  string `json:"module,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Emotion string `json:"emotion,omitempty"`
	Text    string `json:"text"`
}

// Config holds builder settings.
type Config struct {
	Style   Style
	Subject string
}

// DefaultConfig returns the historical defaults.
func DefaultConfig() Config {
	return Config{
		Style:   StyleEmotion,
		Subject: "DSA",
	}
}

// Stats summarizes one build pass.
type Stats struct {
	Modules int
	Topics  int
	Records int

	// Categories is the number of emotion profiles (emotion style) or
	// distinct question categories emitted (questions style).
	Categories int
}
