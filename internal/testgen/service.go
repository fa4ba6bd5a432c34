package testgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhalilaj/my-ai/internal/jsonx"
	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/store"
)

// optionLabels maps an MCQ answer letter to its 0-based option index.
var optionLabels = []string{"A", "B", "C", "D"}

// GenerationError reports a model reply that is not a usable test.
// Nothing is persisted when it is returned.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("test generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("test generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Service generates and fetches per-lesson tests.
type Service struct {
	models  llm.Resolver
	topics  store.TopicRepo
	lessons store.LessonRepo
	tests   store.TestRepo
	retry   llm.RetryConfig
}

func New(models llm.Resolver, topics store.TopicRepo, lessons store.LessonRepo, tests store.TestRepo, retry llm.RetryConfig) *Service {
	return &Service{
		models:  models,
		topics:  topics,
		lessons: lessons,
		tests:   tests,
		retry:   retry,
	}
}

// GetOrCreate returns the lesson's current test, generating one only
// when none exists yet. Repeated calls without an intervening
// Generate return the same test and make no model calls.
func (s *Service) GetOrCreate(ctx context.Context, lessonID string) (*store.Test, error) {
	existing, err := s.tests.Latest(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.Generate(ctx, lessonID)
}

// Generate always synthesizes a fresh test for the lesson. The new
// test becomes the lesson's current one; earlier tests stay on record
// for score aggregation.
func (s *Service) Generate(ctx context.Context, lessonID string) (*store.Test, error) {
	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	topic, err := s.topics.Get(ctx, lesson.TopicID)
	if err != nil {
		return nil, err
	}

	base, err := s.models.ForModel(ctx, topic.AIModel)
	if err != nil {
		return nil, err
	}
	provider := llm.WithRetry(base, s.retry)

	ctx = llm.WithPurpose(ctx, "testgen")
	resp, err := provider.GenerateText(ctx, llm.Request{
		System: testSystem,
		Prompt: buildTestPrompt(lesson.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("test generation: %w", err)
	}

	var questions []store.Question
	if err := jsonx.Unmarshal(questionListSchema, resp.Text, &questions); err != nil {
		return nil, &GenerationError{Reason: "unparseable reply", Err: err}
	}

	keys, err := deriveAnswerKeys(questions)
	if err != nil {
		return nil, err
	}

	test := &store.Test{
		ID:             uuid.NewString(),
		LessonID:       lessonID,
		Questions:      questions,
		CorrectAnswers: keys,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := s.tests.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// deriveAnswerKeys validates every question and builds the grading
// key: a 0-based option index per MCQ, nil per open question.
func deriveAnswerKeys(questions []store.Question) ([]*int, error) {
	keys := make([]*int, len(questions))
	for i, q := range questions {
		switch q.Type {
		case store.QuestionMCQ:
			if len(q.Options) != len(optionLabels) {
				return nil, &GenerationError{
					Reason: fmt.Sprintf("question %d: mcq has %d options, want %d", i+1, len(q.Options), len(optionLabels)),
				}
			}
			idx := labelIndex(q.CorrectAnswer)
			if idx < 0 {
				return nil, &GenerationError{
					Reason: fmt.Sprintf("question %d: mcq answer %q is not a valid option label", i+1, q.CorrectAnswer),
				}
			}
			keys[i] = &idx
		case store.QuestionTheory, store.QuestionPractical:
			if strings.TrimSpace(q.CorrectAnswer) == "" {
				return nil, &GenerationError{
					Reason: fmt.Sprintf("question %d: open question has no reference answer", i+1),
				}
			}
			keys[i] = nil
		default:
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: unknown type %q", i+1, q.Type),
			}
		}
	}
	return keys, nil
}

func labelIndex(label string) int {
	label = strings.ToUpper(strings.TrimSpace(label))
	for i, l := range optionLabels {
		if label == l {
			return i
		}
	}
	return -1
}

// Redacted returns a copy of the test safe to show a student: the
// per-question reference answers and the grading key are stripped.
func Redacted(t *store.Test) *store.Test {
	out := *t
	out.Questions = make([]store.Question, len(t.Questions))
	for i, q := range t.Questions {
		q.CorrectAnswer = ""
		out.Questions[i] = q
	}
	out.CorrectAnswers = nil
	return &out
}
