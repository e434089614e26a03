package curriculum

// Course is the root of a curriculum document.
type Course struct {
	CourseName string   `json:"course_name" yaml:"course_name"`
	Modules    []Module `json:"modules" yaml:"modules"`
}

// Module groups related topics under a title.
type Module struct {
	Title  string  `json:"title" yaml:"title"`
	Topics []Topic `json:"topics" yaml:"topics"`
}

// Topic is the smallest unit of teachable content. All fields except
// Title are optional in authored course files.
type Topic struct {
	Title        string        `json:"title" yaml:"title"`
	Content      string        `json:"content,omitempty" yaml:"content,omitempty"`
	KeyPoints    []string      `json:"key_points,omitempty" yaml:"key_points,omitempty"`
	CodeExamples []CodeExample `json:"code_examples,omitempty" yaml:"code_examples,omitempty"`
	Videos       []VideoRef    `json:"videos,omitempty" yaml:"videos,omitempty"`
}

// CodeExample is a runnable snippet with its expected output.
type CodeExample struct {
	Code   string `json:"code" yaml:"code"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// VideoRef points at an external video resource.
type VideoRef struct {
	Title      string `json:"title" yaml:"title"`
	YoutubeURL string `json:"youtube_url" yaml:"youtube_url"`
}

// TopicCount returns the total number of topics across all modules.
func (c *Course) TopicCount() int {
	var n int
	for _, m := range c.Modules {
		n += len(m.Topics)
	}
	return n
}
