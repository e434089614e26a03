package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/dsagen/internal/builder"
	"github.com/abhisek/dsagen/internal/curriculum"
)

var (
	previewTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	previewMeta = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the first records to stdout without writing anything",
	Long: `Build records from the course file and print the first few to the
terminal. Nothing is written and no run is journaled — useful for
checking template output while editing a course.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntP("count", "n", 4, "Number of records to show")
	previewCmd.Flags().String("style", string(builder.StyleEmotion), "Template style: emotion or questions")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	styleVal, _ := cmd.Flags().GetString("style")

	style := builder.Style(styleVal)
	if !style.Valid() {
		return fmt.Errorf("invalid style %q: must be emotion or questions", styleVal)
	}

	course, err := curriculum.Load(resolveInputPath(cmd))
	if err != nil {
		return err
	}

	cfg := builder.DefaultConfig()
	cfg.Style = style
	b, err := builder.New(cfg)
	if err != nil {
		return err
	}

	records, stats := b.Build(cmd.Context(), course)
	if len(records) == 0 {
		fmt.Println("No records generated (course has no topics).")
		return nil
	}
	if count > len(records) {
		count = len(records)
	}

	for i, r := range records[:count] {
		header := fmt.Sprintf("Record %d/%d", i+1, stats.Records)
		fmt.Println(previewTitle.Render(header))
		if r.Topic != "" {
			meta := fmt.Sprintf("%s / %s [%s]", r.Module, r.Topic, r.Emotion)
			fmt.Println(previewMeta.Render(meta))
		}
		fmt.Println(r.Text)
		fmt.Println()
	}

	if count < stats.Records {
		fmt.Println(previewMeta.Render(fmt.Sprintf("... %d more records", stats.Records-count)))
	}
	return nil
}
