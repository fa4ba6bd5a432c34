package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage your topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTopics(cmd)
	},
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTopics(cmd)
	},
}

var topicsRenameCmd = &cobra.Command{
	Use:   "rename <topic-id> <new-title>",
	Short: "Rename a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Topics.Rename(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Renamed.")
		return nil
	},
}

var topicsDeleteCmd = &cobra.Command{
	Use:   "delete <topic-id>",
	Short: "Delete a topic and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Topics.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func listTopics(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.Topics.List(cmd.Context(), userID(cmd))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No topics yet. Create one with `myai create`.")
		return nil
	}

	fmt.Printf("%-36s  %-30s  %-12s  %-9s  %8s  %6s\n",
		"ID", "Title", "Style", "Model", "Lessons", "Avg")
	for _, t := range list {
		title := t.Title
		if len(title) > 30 {
			title = title[:30]
		}
		avg := scoreStyle(t.AverageScore).Render(fmt.Sprintf("%5.1f%%", t.AverageScore))
		fmt.Printf("%-36s  %-30s  %-12s  %-9s  %5d/%-2d  %s\n",
			t.ID, title, t.TeachingStyle, t.AIModel, t.CompletedLessons, t.TotalLessons, avg)
	}
	return nil
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsRenameCmd)
	topicsCmd.AddCommand(topicsDeleteCmd)
}
