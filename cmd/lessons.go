package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons <topic-id>",
	Short: "List a topic's lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		lessons, err := a.Store.Lessons().ListByTopic(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(lessons) == 0 {
			fmt.Println("No lessons yet. Run `myai generate` first.")
			return nil
		}

		for _, l := range lessons {
			mark := styleDim.Render("○")
			if l.Completed {
				mark = styleGood.Render("●")
			}
			fmt.Printf("%s %s  %s  %s\n",
				mark,
				styleDim.Render(l.ID),
				l.Title,
				scoreStyle(l.AverageScore).Render(fmt.Sprintf("%.1f%%", l.AverageScore)))
		}
		return nil
	},
}

var lessonCmd = &cobra.Command{
	Use:   "lesson <lesson-id>",
	Short: "Print a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		l, err := a.Store.Lessons().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render(l.Title))
		fmt.Println()
		fmt.Println(l.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lessonCmd)
}
