package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <topic-id>",
	Short: "Show progress and scores for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		topic, err := a.Topics.Get(ctx, args[0])
		if err != nil {
			return err
		}
		lessons, err := a.Store.Lessons().ListByTopic(ctx, topic.ID)
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render(topic.Title))
		fmt.Printf("Completed: %d/%d lessons\n", topic.CompletedLessons, topic.TotalLessons)
		fmt.Printf("Average:   %s\n\n", scoreStyle(topic.AverageScore).Render(fmt.Sprintf("%.1f%%", topic.AverageScore)))

		for _, l := range lessons {
			mark := styleDim.Render("○")
			if l.Completed {
				mark = styleGood.Render("●")
			}
			fmt.Printf("%s %-50s %s %s\n",
				mark,
				truncate(l.Title, 50),
				bar(l.AverageScore, 20),
				scoreStyle(l.AverageScore).Render(fmt.Sprintf("%5.1f%%", l.AverageScore)))
		}
		return nil
	},
}

// bar renders a fixed-width score bar.
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return scoreStyle(pct).Render(strings.Repeat("█", filled)) +
		styleDim.Render(strings.Repeat("░", width-filled))
}

// truncate cuts on rune boundaries so multi-byte titles stay valid.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
