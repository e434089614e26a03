package builder

// Profile is a fixed learner persona used to color generated text.
type Profile struct {
	Emotion string
	Tone    string
}

// profiles is the fixed persona list, in enumeration order. Matches the
// emotion states tracked by the companion app, so the order is part of
// the output contract.
var profiles = []Profile{
	{Emotion: "confused", Tone: "calm, slow, reassuring"},
	{Emotion: "frustrated", Tone: "supportive, motivating"},
	{Emotion: "neutral", Tone: "clear, structured"},
	{Emotion: "confident", Tone: "challenging, interview-focused"},
}

// Profiles returns the fixed emotion profiles in enumeration order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
