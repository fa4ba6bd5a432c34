package testgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/store"
)

const goodTestJSON = "```json\n" + `[
  {"type": "mcq", "question": "What does TCP stand for?",
   "options": ["Transmission Control Protocol", "Total Control Program", "Transfer Copy Protocol", "Tiny Cat Party"],
   "correctAnswer": "A"},
  {"type": "theory", "question": "Explain the three-way handshake.",
   "correctAnswer": "SYN, SYN-ACK, ACK establish a connection."},
  {"type": "practical", "question": "Sketch a retransmission scenario.",
   "correctAnswer": "Client resends after timeout without ACK."}
]` + "\n```"

func seed(t *testing.T, m *store.Memory) *store.Lesson {
	t.Helper()
	ctx := context.Background()
	topic := &store.Topic{ID: "t1", UserID: "u1", Title: "TCP", TeachingStyle: store.StyleSimple, AIModel: llm.ModelMock}
	if err := m.Topics().Create(ctx, topic); err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	lesson := &store.Lesson{ID: "l1", TopicID: "t1", Title: "Lesson 1: TCP", Content: "TCP is..."}
	if err := m.Lessons().Create(ctx, lesson); err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return lesson
}

func newService(m *store.Memory, p llm.Provider) *Service {
	return New(llm.StaticResolver(p), m.Topics(), m.Lessons(), m.Tests(), llm.RetryConfig{MaxAttempts: 1, Multiplier: 2.0})
}

func TestGenerate_DerivesAnswerKeys(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lesson := seed(t, m)

	svc := newService(m, llm.NewMockProvider(llm.MockResponse{Text: goodTestJSON}))

	test, err := svc.Generate(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(test.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(test.Questions))
	}
	if test.CorrectAnswers[0] == nil || *test.CorrectAnswers[0] != 0 {
		t.Fatalf("mcq key = %v, want 0", test.CorrectAnswers[0])
	}
	if test.CorrectAnswers[1] != nil || test.CorrectAnswers[2] != nil {
		t.Fatal("open questions must have nil keys")
	}
}

func TestGenerate_PromptAdaptsMixToContent(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lesson := seed(t, m)

	mock := llm.NewMockProvider(llm.MockResponse{Text: goodTestJSON})
	svc := newService(m, mock)

	if _, err := svc.Generate(ctx, lesson.ID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Prompt
	for _, want := range []string{
		"at least 2 MCQs",
		"factual or has clear answers, write 3 or 4",
		"concept-based or needs detailed explanations, write 2 or more theory",
		"code, algorithms or implementation tasks, write at least 1 practical",
		lesson.Content,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("test prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerate_RejectsTooFewQuestions(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lesson := seed(t, m)

	single := `[{"type": "theory", "question": "Why?", "correctAnswer": "Because."}]`
	svc := newService(m, llm.NewMockProvider(llm.MockResponse{Text: single}))

	_, err := svc.Generate(ctx, lesson.ID)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}

	if latest, _ := m.Tests().Latest(ctx, lesson.ID); latest != nil {
		t.Fatal("rejected test must not be persisted")
	}
}

func TestGenerate_RejectsBadMCQ(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		json string
	}{
		{
			"wrong option count",
			`[{"type": "mcq", "question": "q", "options": ["a", "b"], "correctAnswer": "A"},
			  {"type": "theory", "question": "q2", "correctAnswer": "r"}]`,
		},
		{
			"bad answer label",
			`[{"type": "mcq", "question": "q", "options": ["a", "b", "c", "d"], "correctAnswer": "E"},
			  {"type": "theory", "question": "q2", "correctAnswer": "r"}]`,
		},
		{
			"open question without reference answer",
			`[{"type": "theory", "question": "q", "correctAnswer": "  "},
			  {"type": "theory", "question": "q2", "correctAnswer": "r"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := store.NewMemory()
			lesson := seed(t, m)
			svc := newService(m, llm.NewMockProvider(llm.MockResponse{Text: tt.json}))

			_, err := svc.Generate(ctx, lesson.ID)
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GenerationError, got %v", err)
			}
		})
	}
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lesson := seed(t, m)

	mock := llm.NewMockProvider(llm.MockResponse{Text: goodTestJSON})
	svc := newService(m, mock)

	first, err := svc.GetOrCreate(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetOrCreate(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.ID != second.ID {
		t.Fatal("expected the same test back")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 model call, got %d", mock.CallCount())
	}
}

func TestGenerate_ReplacementBecomesCurrent(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	lesson := seed(t, m)

	mock := llm.NewMockProvider(
		llm.MockResponse{Text: goodTestJSON},
		llm.MockResponse{Text: goodTestJSON},
	)
	svc := newService(m, mock)

	first, err := svc.Generate(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.Generate(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	latest, err := m.Tests().Latest(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatal("replacement must become the current test")
	}

	history, _ := m.Tests().ListByLesson(ctx, lesson.ID)
	if len(history) != 2 {
		t.Fatalf("old test must stay on record, got %d", len(history))
	}
	if _, err := m.Tests().Get(ctx, first.ID); err != nil {
		t.Fatalf("old test should still be fetchable: %v", err)
	}
}

func TestRedacted(t *testing.T) {
	one := 1
	orig := &store.Test{
		ID: "x1",
		Questions: []store.Question{
			{Type: store.QuestionMCQ, Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "B"},
			{Type: store.QuestionTheory, Question: "q2", CorrectAnswer: "secret"},
		},
		CorrectAnswers: []*int{&one, nil},
		Submitted:      true,
		Score:          15,
		Percentage:     75,
	}

	red := Redacted(orig)
	for i, q := range red.Questions {
		if q.CorrectAnswer != "" {
			t.Errorf("question %d still carries its answer", i)
		}
	}
	if red.CorrectAnswers != nil {
		t.Error("grading key leaked")
	}
	if !red.Submitted || red.Score != 15 || red.Percentage != 75 {
		t.Error("prior score must survive redaction")
	}
	if orig.Questions[1].CorrectAnswer != "secret" {
		t.Error("redaction must not mutate the original")
	}
}
