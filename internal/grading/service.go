package grading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhalilaj/my-ai/internal/jsonx"
	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/progress"
	"github.com/jhalilaj/my-ai/internal/store"
)

// Every question is worth the same maximum, so the percentage is a
// plain mean over questions.
const (
	WeightMCQ  = 10.0
	WeightOpen = 10.0
)

// parseFailureFeedback is recorded when the grader's reply cannot be
// decoded; the attempt still completes with zero credit for that
// question.
const parseFailureFeedback = "Error parsing feedback"

// ErrIncompleteSubmission rejects a submission with missing answers
// before any grading work happens.
type ErrIncompleteSubmission struct {
	Missing []int // 0-based question indexes
}

func (e *ErrIncompleteSubmission) Error() string {
	return fmt.Sprintf("incomplete submission: missing answers for questions %v", e.Missing)
}

var rubricSchema = &jsonx.Schema{
	Name: "rubric_result",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"feedback", "score"},
		"properties": map[string]any{
			"feedback": map[string]any{"type": "string"},
			"score":    map[string]any{"type": "number"},
		},
	},
}

type rubricResult struct {
	Feedback string  `json:"feedback"`
	Score    float64 `json:"score"`
}

// Service grades submitted answer sets and records the results.
type Service struct {
	models   llm.Resolver
	topics   store.TopicRepo
	lessons  store.LessonRepo
	tests    store.TestRepo
	progress *progress.Service
	retry    llm.RetryConfig
}

func New(models llm.Resolver, topics store.TopicRepo, lessons store.LessonRepo, tests store.TestRepo, prog *progress.Service, retry llm.RetryConfig) *Service {
	return &Service{
		models:   models,
		topics:   topics,
		lessons:  lessons,
		tests:    tests,
		progress: prog,
		retry:    retry,
	}
}

// Evaluate grades one full answer set for the test. MCQs are scored
// by key comparison; open questions go through a per-question rubric
// call. The test is updated in place (a resubmission overwrites the
// previous attempt) and the lesson and topic averages are recomputed
// before returning.
func (s *Service) Evaluate(ctx context.Context, testID string, answers []store.Answer) (*store.Test, error) {
	test, err := s.tests.Get(ctx, testID)
	if err != nil {
		return nil, err
	}

	if missing := missingAnswers(test.Questions, answers); len(missing) > 0 {
		return nil, &ErrIncompleteSubmission{Missing: missing}
	}

	lesson, err := s.lessons.Get(ctx, test.LessonID)
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

	var (
		raw      float64
		max      float64
		feedback []store.Feedback
	)
	for i, q := range test.Questions {
		switch q.Type {
		case store.QuestionMCQ:
			max += WeightMCQ
			key := test.CorrectAnswers[i]
			if key != nil && answers[i].Choice != nil && *answers[i].Choice == *key {
				raw += WeightMCQ
			}
		default:
			max += WeightOpen
			res, err := s.gradeOpen(ctx, provider, lesson.Content, q, answers[i].Text)
			if err != nil {
				return nil, err
			}
			raw += res.Score
			feedback = append(feedback, store.Feedback{
				QuestionIndex: i,
				Type:          q.Type,
				Feedback:      res.Feedback,
				Score:         res.Score,
			})
		}
	}

	test.UserAnswers = answers
	test.Feedback = feedback
	test.Score = raw
	test.Percentage = 0
	if max > 0 {
		test.Percentage = 100 * raw / max
	}
	test.Submitted = true
	test.UpdatedAt = time.Now()
	if err := s.tests.Update(ctx, test); err != nil {
		return nil, err
	}

	if _, err := s.progress.RecomputeLesson(ctx, test.LessonID); err != nil {
		return nil, fmt.Errorf("recompute averages: %w", err)
	}
	return test, nil
}

// gradeOpen runs one rubric call. Provider failures abort the whole
// evaluation; an unparseable grading reply degrades to zero credit
// with a canned note so one bad reply cannot sink the attempt.
func (s *Service) gradeOpen(ctx context.Context, provider llm.Provider, lessonContent string, q store.Question, answer string) (*rubricResult, error) {
	ctx = llm.WithPurpose(ctx, "grading")
	resp, err := provider.GenerateText(ctx, llm.Request{
		System: rubricSystem,
		Prompt: buildRubricPrompt(lessonContent, q, answer),
	})
	if err != nil {
		return nil, fmt.Errorf("grade %s question: %w", q.Type, err)
	}

	var res rubricResult
	if err := jsonx.Unmarshal(rubricSchema, resp.Text, &res); err != nil {
		return &rubricResult{Feedback: parseFailureFeedback, Score: 0}, nil
	}
	res.Score = clamp(res.Score, 0, WeightOpen)
	return &res, nil
}

// missingAnswers returns the indexes of questions without a usable
// answer: no option choice for an MCQ, blank text for an open
// question, or no answer entry at all.
func missingAnswers(questions []store.Question, answers []store.Answer) []int {
	var missing []int
	for i, q := range questions {
		if i >= len(answers) {
			missing = append(missing, i)
			continue
		}
		switch q.Type {
		case store.QuestionMCQ:
			if answers[i].Choice == nil {
				missing = append(missing, i)
			}
		default:
			if strings.TrimSpace(answers[i].Text) == "" {
				missing = append(missing, i)
			}
		}
	}
	return missing
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
