package cmd

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jhalilaj/my-ai/internal/store"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(out)
}

func TestPrintTest_ShowsPriorScore(t *testing.T) {
	test := &store.Test{
		ID: "x1",
		Questions: []store.Question{
			{Type: store.QuestionMCQ, Question: "Which structure is LIFO?", Options: []string{"Queue", "Stack", "Linked List", "Tree"}},
		},
		Submitted:  true,
		Percentage: 62.5,
	}

	out := captureStdout(t, func() { printTest(test) })
	if !strings.Contains(out, "Last score") || !strings.Contains(out, "62.5%") {
		t.Fatalf("output missing prior score:\n%s", out)
	}
}

func TestPrintTest_NoScoreBeforeSubmission(t *testing.T) {
	test := &store.Test{
		ID:        "x2",
		Questions: []store.Question{{Type: store.QuestionTheory, Question: "Explain LIFO."}},
	}

	out := captureStdout(t, func() { printTest(test) })
	if strings.Contains(out, "Last score") {
		t.Fatalf("unsubmitted test must not show a score:\n%s", out)
	}
}
