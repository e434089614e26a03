package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/dsagen/internal/builder"
	"github.com/abhisek/dsagen/internal/curriculum"
	"github.com/abhisek/dsagen/internal/history"
	"github.com/abhisek/dsagen/internal/llm"
	"github.com/abhisek/dsagen/internal/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate training records from a course file",
	Long: `Load a course file, flatten every topic into training records, and
write them as an indented JSON array (or an XLSX review sheet).

Two template styles exist:
  emotion    one tutor-response record per topic and emotion profile
  questions  question/answer records per populated content category`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	addGenerateFlags(generateCmd)
	// The root command runs generate by default, so it carries the same flags.
	addGenerateFlags(rootCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file path (overrides DSAGEN_OUTPUT)")
	cmd.Flags().String("style", string(builder.StyleEmotion), "Template style: emotion or questions")
	cmd.Flags().String("format", "json", "Output format: json or xlsx")
	cmd.Flags().Bool("strict", false, "Validate the course against the schema before building")
	cmd.Flags().Bool("enrich", false, "Rewrite tone-sensitive sections per emotion via an LLM provider")
	cmd.Flags().Bool("no-history", false, "Skip recording this run in the history journal")
}

func runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	start := time.Now()

	inputPath := resolveInputPath(cmd)
	outputPath := resolveOutputPath(cmd)
	styleVal, _ := cmd.Flags().GetString("style")
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")
	enrich, _ := cmd.Flags().GetBool("enrich")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	style := builder.Style(styleVal)
	if !style.Valid() {
		return fmt.Errorf("invalid style %q: must be emotion or questions", styleVal)
	}
	if format != "json" && format != "xlsx" {
		return fmt.Errorf("invalid format %q: must be json or xlsx", format)
	}

	if strict {
		if err := curriculum.ValidateFile(inputPath); err != nil {
			return err
		}
	}

	course, err := curriculum.Load(inputPath)
	if err != nil {
		return err
	}

	courseName := course.CourseName
	if courseName == "" {
		courseName = "DSA Course"
	}
	fmt.Printf("Processing course: %s\n", courseName)

	cfg := builder.DefaultConfig()
	cfg.Style = style
	b, err := builder.New(cfg)
	if err != nil {
		return err
	}

	enriched := false
	if enrich {
		provider, perr := llm.NewProvider(llm.ConfigFromEnv())
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", perr)
			fmt.Fprintln(os.Stderr, "Continuing with static sections.")
		} else {
			b.WithEnricher(builder.NewEnricher(provider, builder.DefaultEnrichConfig()))
			enriched = true
		}
	}

	records, stats := b.Build(ctx, course)

	switch format {
	case "json":
		err = output.WriteJSON(outputPath, records)
	case "xlsx":
		err = output.WriteXLSX(outputPath, records)
	}
	if err != nil {
		return err
	}

	recordRun(ctx, noHistory, history.Run{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Style:      string(style),
		Modules:    stats.Modules,
		Topics:     stats.Topics,
		Records:    stats.Records,
		Enriched:   enriched,
		DurationMS: time.Since(start).Milliseconds(),
	})

	printSummary(inputPath, outputPath, style, stats)
	return nil
}

// recordRun journals the run. Journal failures never fail a generation.
func recordRun(ctx context.Context, skip bool, run history.Run) {
	if skip {
		return
	}

	dbPath, err := history.DefaultDBPath()
	if err != nil {
		slog.Warn("history journal unavailable", "error", err)
		return
	}
	store, err := history.Open(dbPath)
	if err != nil {
		slog.Warn("history journal unavailable", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.Append(ctx, run); err != nil {
		slog.Warn("failed to journal run", "error", err)
	}
}

func printSummary(inputPath, outputPath string, style builder.Style, stats builder.Stats) {
	sep := strings.Repeat("─", 60)

	fmt.Println(sep)
	fmt.Println("GENERATION SUMMARY")
	fmt.Printf("Input:    %s\n", inputPath)
	fmt.Printf("Output:   %s\n", outputPath)
	fmt.Printf("Modules:  %d\n", stats.Modules)
	fmt.Printf("Topics:   %d\n", stats.Topics)
	fmt.Printf("Records:  %d\n", stats.Records)
	switch style {
	case builder.StyleEmotion:
		fmt.Printf("Emotion profiles per topic: %d\n", stats.Categories)
	case builder.StyleQuestions:
		fmt.Printf("Question categories used: %d\n", stats.Categories)
	}
	fmt.Println(sep)
}

// resolveOutputPath returns the output path using --output (highest
// priority), then the DSAGEN_OUTPUT env var, then the default constant.
func resolveOutputPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("output"); p != "" {
		return p
	}
	if p := os.Getenv("DSAGEN_OUTPUT"); p != "" {
		return p
	}
	return defaultOutputFile
}
