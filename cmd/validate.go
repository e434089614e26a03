package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dsagen/internal/curriculum"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a course file against the course schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveInputPath(cmd)

		if err := curriculum.ValidateFile(path); err != nil {
			return err
		}

		course, err := curriculum.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s is valid: %d modules, %d topics\n",
			path, len(course.Modules), course.TopicCount())
		return nil
	},
}
