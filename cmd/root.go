package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Default course and output paths, overridable by flag or env var.
const (
	defaultInputFile  = "dsa_course.json"
	defaultOutputFile = "dsa_training.json"
)

var rootCmd = &cobra.Command{
	Use:   "dsagen",
	Short: "Generate SLM training data from a DSA course",
	Long: "Dsagen flattens a structured course file (modules of topics) into\n" +
		"training records for fine-tuning a small language model.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("input", "i", "", "Course file path (overrides DSAGEN_INPUT)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveInputPath returns the course path using --input (highest
// priority), then the DSAGEN_INPUT env var, then the default constant.
func resolveInputPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("input"); p != "" {
		return p
	}
	if p := os.Getenv("DSAGEN_INPUT"); p != "" {
		return p
	}
	return defaultInputFile
}
