package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as finished",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Learn.CompleteLesson(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(styleGood.Render("Lesson completed."))
		return nil
	},
}
