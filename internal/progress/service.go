package progress

import (
	"context"

	"github.com/jhalilaj/my-ai/internal/store"
)

// Service keeps per-lesson and per-topic averages in sync with the
// recorded test attempts.
type Service struct {
	topics  store.TopicRepo
	lessons store.LessonRepo
	tests   store.TestRepo
}

func New(topics store.TopicRepo, lessons store.LessonRepo, tests store.TestRepo) *Service {
	return &Service{topics: topics, lessons: lessons, tests: tests}
}

// RecomputeLesson recalculates the lesson's average as the mean
// percentage over every test recorded for it, then rolls the change
// up into the topic average. It returns the new lesson average.
func (s *Service) RecomputeLesson(ctx context.Context, lessonID string) (float64, error) {
	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return 0, err
	}

	tests, err := s.tests.ListByLesson(ctx, lessonID)
	if err != nil {
		return 0, err
	}
	lesson.AverageScore = meanPercentage(tests)
	if err := s.lessons.Update(ctx, lesson); err != nil {
		return 0, err
	}

	if err := s.RecomputeTopic(ctx, lesson.TopicID); err != nil {
		return 0, err
	}
	return lesson.AverageScore, nil
}

// RecomputeTopic recalculates the topic's average as the mean of its
// lessons' averages.
func (s *Service) RecomputeTopic(ctx context.Context, topicID string) error {
	topic, err := s.topics.Get(ctx, topicID)
	if err != nil {
		return err
	}
	lessons, err := s.lessons.ListByTopic(ctx, topicID)
	if err != nil {
		return err
	}

	var sum float64
	for _, l := range lessons {
		sum += l.AverageScore
	}
	topic.AverageScore = 0
	if len(lessons) > 0 {
		topic.AverageScore = sum / float64(len(lessons))
	}
	return s.topics.Update(ctx, topic)
}

// CompleteLesson marks the lesson finished and refreshes the topic's
// completed-lesson count.
func (s *Service) CompleteLesson(ctx context.Context, lessonID string) error {
	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return err
	}
	if !lesson.Completed {
		lesson.Completed = true
		if err := s.lessons.Update(ctx, lesson); err != nil {
			return err
		}
	}

	topic, err := s.topics.Get(ctx, lesson.TopicID)
	if err != nil {
		return err
	}
	lessons, err := s.lessons.ListByTopic(ctx, lesson.TopicID)
	if err != nil {
		return err
	}
	completed := 0
	for _, l := range lessons {
		if l.Completed {
			completed++
		}
	}
	topic.CompletedLessons = completed
	return s.topics.Update(ctx, topic)
}

func meanPercentage(tests []*store.Test) float64 {
	if len(tests) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tests {
		sum += t.Percentage
	}
	return sum / float64(len(tests))
}
