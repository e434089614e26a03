package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/dsagen/internal/curriculum"
)

// Fallback titles for partially-authored course files.
const (
	defaultModuleTitle = "Module"
	defaultTopicTitle  = "Topic"
)

// Builder converts a course into an ordered record list. It is
// stateless across Build calls.
type Builder struct {
	cfg      Config
	enricher *Enricher
}

// New creates a Builder with the given configuration.
func New(cfg Config) (*Builder, error) {
	if !cfg.Style.Valid() {
		return nil, fmt.Errorf("unknown template style: %q", cfg.Style)
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultConfig().Subject
	}
	return &Builder{cfg: cfg}, nil
}

// WithEnricher attaches an optional enricher. Only emotion-style builds
// consult it.
func (b *Builder) WithEnricher(e *Enricher) *Builder {
	b.enricher = e
	return b
}

// Build walks the course in file order (modules, then topics, then
// profiles or question categories) and returns the flattened records.
// Records are append-only; nothing mutates them after creation.
func (b *Builder) Build(ctx context.Context, course *curriculum.Course) ([]Record, Stats) {
	var records []Record
	stats := Stats{Modules: len(course.Modules)}
	categories := make(map[string]bool)

	for _, module := range course.Modules {
		moduleTitle := module.Title
		if moduleTitle == "" {
			moduleTitle = defaultModuleTitle
		}

		for _, topic := range module.Topics {
			stats.Topics++
			title := topic.Title
			if title == "" {
				title = defaultTopicTitle
			}
			content := topic.Content
			if content == "" {
				content = defaultContent
			}

			switch b.cfg.Style {
			case StyleEmotion:
				records = append(records, b.buildTeaching(ctx, moduleTitle, title, content)...)
			case StyleQuestions:
				records = append(records, buildQuestions(title, content, topic, categories)...)
			}
		}
	}

	stats.Records = len(records)
	switch b.cfg.Style {
	case StyleEmotion:
		stats.Categories = len(profiles)
	case StyleQuestions:
		stats.Categories = len(categories)
	}

	return records, stats
}

// buildTeaching produces one record per emotion profile, in profile
// enumeration order.
func (b *Builder) buildTeaching(ctx context.Context, moduleTitle, title, content string) []Record {
	records := make([]Record, 0, len(profiles))

	for _, p := range profiles {
		var variation teachingVariation
		if b.enricher != nil {
			v, err := b.enricher.Variation(ctx, title, content, p)
			if err != nil {
				slog.Warn("enrichment failed, using static sections",
					"topic", title, "emotion", p.Emotion, "error", err)
			} else {
				variation = *v
			}
		}

		records = append(records, Record{
			Subject: b.cfg.Subject,
			Module:  moduleTitle,
			Topic:   title,
			Emotion: p.Emotion,
			Text:    buildTeachingText(title, content, p, variation),
		})
	}

	return records
}

// buildQuestions produces the conditional per-topic records: always a
// definition, then key points, code examples, and videos when present.
func buildQuestions(title, content string, topic curriculum.Topic, categories map[string]bool) []Record {
	var records []Record

	records = append(records, Record{Text: definitionText(title, content)})
	categories[categoryDefinition] = true

	if len(topic.KeyPoints) > 0 {
		records = append(records, Record{Text: keyPointsText(title, topic.KeyPoints)})
		categories[categoryKeyPoints] = true
	}

	for _, ex := range topic.CodeExamples {
		records = append(records, Record{Text: codeExampleText(title, ex)})
		categories[categoryCode] = true
	}

	for _, v := range topic.Videos {
		records = append(records, Record{Text: videoText(title, v)})
		categories[categoryVideo] = true
	}

	return records
}
