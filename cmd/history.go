package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/dsagen/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := history.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve history path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No generation runs recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-9s  %7s  %7s  %8s  %s\n",
			"Timestamp", "Style", "Topics", "Records", "Enriched", "Output")
		fmt.Println(strings.Repeat("─", 80))

		for _, r := range runs {
			enriched := ""
			if r.Enriched {
				enriched = "yes"
			}
			fmt.Printf("%-19s  %-9s  %7d  %7d  %8s  %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Style, r.Topics, r.Records, enriched, r.OutputPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}
