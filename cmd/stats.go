package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/dsagen/internal/builder"
	"github.com/abhisek/dsagen/internal/curriculum"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-module topic and record counts for a course",
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := curriculum.Load(resolveInputPath(cmd))
		if err != nil {
			return err
		}

		name := course.CourseName
		if name == "" {
			name = "DSA Course"
		}
		fmt.Printf("Course: %s\n\n", name)

		fmt.Printf("%-32s  %6s  %8s  %10s\n", "Module", "Topics", "Emotion", "Questions")
		fmt.Println(strings.Repeat("─", 62))

		var totalTopics, totalEmotion, totalQuestions int
		for _, m := range course.Modules {
			emotion, questions := moduleRecordCounts(m)
			totalTopics += len(m.Topics)
			totalEmotion += emotion
			totalQuestions += questions

			title := m.Title
			if len(title) > 32 {
				title = title[:32]
			}
			fmt.Printf("%-32s  %6d  %8d  %10d\n", title, len(m.Topics), emotion, questions)
		}

		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-32s  %6d  %8d  %10d\n", "TOTAL", totalTopics, totalEmotion, totalQuestions)
		return nil
	},
}

// moduleRecordCounts reports how many records each style would emit for
// a module, without rendering any text.
func moduleRecordCounts(m curriculum.Module) (emotion, questions int) {
	emotion = len(m.Topics) * len(builder.Profiles())
	for _, t := range m.Topics {
		questions++ // definition record is unconditional
		if len(t.KeyPoints) > 0 {
			questions++
		}
		questions += len(t.CodeExamples)
		questions += len(t.Videos)
	}
	return emotion, questions
}
