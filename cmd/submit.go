package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jhalilaj/my-ai/internal/grading"
	"github.com/jhalilaj/my-ai/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit <test-id>",
	Short: "Submit answers for a test and get it graded",
	Long: `Submit answers for a test and get it graded.

Pass one -a per question, in question order: the option letter (A-D)
for multiple-choice questions, free text for open ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringArray("answer")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		t, err := a.Store.Tests().Get(ctx, args[0])
		if err != nil {
			return err
		}

		answers, err := parseAnswers(t.Questions, raw)
		if err != nil {
			return err
		}

		graded, err := a.Grader.Evaluate(ctx, t.ID, answers)
		if err != nil {
			var incomplete *grading.ErrIncompleteSubmission
			if errors.As(err, &incomplete) {
				return fmt.Errorf("answer every question before submitting (missing: %v)", oneBased(incomplete.Missing))
			}
			a.Log.Error("evaluation failed", zap.String("test", t.ID), zap.Error(err))
			return err
		}

		printResult(graded)
		return nil
	},
}

func parseAnswers(questions []store.Question, raw []string) ([]store.Answer, error) {
	answers := make([]store.Answer, 0, len(raw))
	for i, r := range raw {
		if i < len(questions) && questions[i].Type == store.QuestionMCQ {
			idx, err := parseChoice(r, len(questions[i].Options))
			if err != nil {
				return nil, fmt.Errorf("question %d: %w", i+1, err)
			}
			answers = append(answers, store.Answer{Choice: &idx})
			continue
		}
		answers = append(answers, store.Answer{Text: r})
	}
	return answers, nil
}

// parseChoice accepts an option letter ("A".."D") or a 1-based number.
func parseChoice(s string, options int) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= 'A' && int(s[0]-'A') < options {
		return int(s[0] - 'A'), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= options {
		return n - 1, nil
	}
	return 0, fmt.Errorf("%q is not a valid option", s)
}

func oneBased(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v + 1
	}
	return out
}

func printResult(t *store.Test) {
	pct := scoreStyle(t.Percentage).Render(fmt.Sprintf("%.1f%%", t.Percentage))
	fmt.Printf("Score: %s (%.1f points)\n", pct, t.Score)

	for _, f := range t.Feedback {
		fmt.Println()
		fmt.Printf("%s %s\n", styleTitle.Render(fmt.Sprintf("Q%d", f.QuestionIndex+1)),
			scoreStyle(10*f.Score).Render(fmt.Sprintf("%.1f/10", f.Score)))
		fmt.Println(f.Feedback)
	}
}

func init() {
	submitCmd.Flags().StringArrayP("answer", "a", nil, "Answer for the next question, in order (repeatable)")
}
