package grading

import (
	"fmt"
	"strings"

	"github.com/jhalilaj/my-ai/internal/store"
)

const rubricSystem = "You are a strict but fair grader. You score a student's answer against a reference answer."

func buildRubricPrompt(lessonContent string, q store.Question, studentAnswer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grade the student's answer to this %s question on a 0-10 scale.\n\n", q.Type)
	fmt.Fprintf(&b, "Lesson material the question is based on:\n%s\n\n", lessonContent)
	fmt.Fprintf(&b, "Question: %s\n\n", q.Question)
	fmt.Fprintf(&b, "Reference answer: %s\n\n", q.CorrectAnswer)
	fmt.Fprintf(&b, "Student answer: %s\n\n", studentAnswer)
	b.WriteString("Award partial credit for partially correct answers. ")
	b.WriteString("Respond with ONLY a JSON object: {\"feedback\": \"<one short paragraph>\", \"score\": <0-10>}.")
	return b.String()
}
