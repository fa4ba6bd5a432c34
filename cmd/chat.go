package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <lesson-id> [question...]",
	Short: "Ask the tutor a question about a lesson",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetBool("history")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		lessonID := args[0]

		if history {
			msgs, err := a.Tutor.History(ctx, lessonID, userID(cmd))
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Println("No conversation yet.")
				return nil
			}
			for _, m := range msgs {
				role := styleDim.Render(m.Role + ":")
				if m.Role == "user" {
					role = styleTitle.Render("you:")
				}
				fmt.Printf("%s %s\n", role, m.Content)
				if m.ImageURL != "" {
					fmt.Println(styleDim.Render("  image: " + m.ImageURL))
				}
			}
			return nil
		}

		if len(args) < 2 {
			return fmt.Errorf("give a question, or use --history to read the conversation")
		}
		prompt := strings.Join(args[1:], " ")

		reply, err := a.Tutor.Ask(ctx, lessonID, userID(cmd), prompt)
		if err != nil {
			return err
		}
		fmt.Println(reply.Text)
		if reply.ImageURL != "" {
			fmt.Println(styleDim.Render("image: " + reply.ImageURL))
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().Bool("history", false, "Print the conversation for this lesson instead of asking")
}
