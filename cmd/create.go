package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhalilaj/my-ai/internal/topics"
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a topic from a title or study files",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringSlice("file")
		style, _ := cmd.Flags().GetString("style")
		model, _ := cmd.Flags().GetString("model")
		generate, _ := cmd.Flags().GetBool("generate")

		title := ""
		if len(args) > 0 {
			title = args[0]
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		topic, err := a.Topics.Create(ctx, topics.CreateInput{
			UserID:        userID(cmd),
			Title:         title,
			FileRefs:      files,
			TeachingStyle: style,
			Model:         model,
		})
		if err != nil {
			return err
		}

		fmt.Println(styleTitle.Render(topic.Title))
		fmt.Printf("id:     %s\n", topic.ID)
		fmt.Printf("style:  %s\n", topic.TeachingStyle)
		fmt.Printf("model:  %s\n", topic.AIModel)
		if len(topic.FileRefs) > 0 {
			fmt.Printf("files:  %s\n", strings.Join(topic.FileRefs, ", "))
		}

		if !generate {
			fmt.Println(styleDim.Render("Run `myai generate " + topic.ID + "` to create lessons."))
			return nil
		}
		return generateLessons(cmd, a, topic.ID)
	},
}

func init() {
	createCmd.Flags().StringSliceP("file", "f", nil, "Study file to teach from (repeatable)")
	createCmd.Flags().StringP("style", "s", "Intermediate", "Teaching depth: Simple, Intermediate or Advanced")
	createCmd.Flags().StringP("model", "m", "gpt", "AI model: gpt, llama, gemini, deepseek or claude")
	createCmd.Flags().Bool("generate", false, "Generate lessons immediately after creating the topic")
}
