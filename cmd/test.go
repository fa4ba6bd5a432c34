package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhalilaj/my-ai/internal/store"
	"github.com/jhalilaj/my-ai/internal/testgen"
)

var testCmd = &cobra.Command{
	Use:   "test <lesson-id>",
	Short: "Show the lesson's test, generating one if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fresh, _ := cmd.Flags().GetBool("new")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		var t *store.Test
		if fresh {
			t, err = a.Tests.Generate(ctx, args[0])
		} else {
			t, err = a.Tests.GetOrCreate(ctx, args[0])
		}
		if err != nil {
			return err
		}

		printTest(testgen.Redacted(t))
		return nil
	},
}

func printTest(t *store.Test) {
	fmt.Printf("Test %s\n", styleDim.Render(t.ID))
	if t.Submitted {
		fmt.Printf("Last score: %s\n", scoreStyle(t.Percentage).Render(fmt.Sprintf("%.1f%%", t.Percentage)))
	}
	fmt.Println()
	for i, q := range t.Questions {
		fmt.Printf("%s %s\n", styleTitle.Render(fmt.Sprintf("%d.", i+1)), q.Question)
		if q.Type == store.QuestionMCQ {
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'A'+j, opt)
			}
		} else {
			fmt.Println(styleDim.Render("   (open answer: " + q.Type + ")"))
		}
		fmt.Println()
	}
	fmt.Println(styleDim.Render("Answer with `myai submit " + t.ID + " -a <answer> ...` in question order."))
}

func init() {
	testCmd.Flags().Bool("new", false, "Generate a fresh test even if one exists")
}
