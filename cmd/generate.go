package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jhalilaj/my-ai/internal/app"
	"github.com/jhalilaj/my-ai/internal/curriculum"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic-id>",
	Short: "Segment the topic's material and synthesize lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return generateLessons(cmd, a, args[0])
	},
}

func generateLessons(cmd *cobra.Command, a *app.App, topicID string) error {
	content := ""
	if path, _ := cmd.Flags().GetString("content"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		content = string(raw)
	}

	fmt.Println(styleDim.Render("Generating lessons..."))
	lessons, err := a.Lessons.Generate(cmd.Context(), topicID, content)

	for _, l := range lessons {
		fmt.Printf("%s  %s\n", styleDim.Render(l.ID), l.Title)
	}

	if err != nil {
		var segErr *curriculum.SegmentationError
		if errors.As(err, &segErr) {
			a.Log.Error("segmentation failed", zap.String("topic", topicID), zap.Error(segErr))
			return fmt.Errorf("the model could not produce a usable section plan: %w", segErr)
		}
		if len(lessons) > 0 {
			a.Log.Warn("lesson synthesis stopped early",
				zap.String("topic", topicID),
				zap.Int("created", len(lessons)),
				zap.Error(err))
			fmt.Println(styleWarn.Render(fmt.Sprintf("Stopped after %d lessons.", len(lessons))))
		}
		return err
	}

	fmt.Println(styleGood.Render(fmt.Sprintf("Created %d lessons.", len(lessons))))
	return nil
}

func init() {
	generateCmd.Flags().String("content", "", "Read source material from this file instead of the topic's files")
}
