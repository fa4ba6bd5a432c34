package progress

import (
	"context"
	"testing"
	"time"

	"github.com/jhalilaj/my-ai/internal/store"
)

func seed(t *testing.T, m *store.Memory, lessonCount int) *store.Topic {
	t.Helper()
	ctx := context.Background()

	topic := &store.Topic{ID: "t1", UserID: "u1", Title: "Algorithms", TotalLessons: lessonCount}
	if err := m.Topics().Create(ctx, topic); err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	for i := 0; i < lessonCount; i++ {
		l := &store.Lesson{ID: lessonID(i), TopicID: "t1", Ordinal: i}
		if err := m.Lessons().Create(ctx, l); err != nil {
			t.Fatalf("seed lesson: %v", err)
		}
	}
	return topic
}

func lessonID(i int) string { return string(rune('a' + i)) }

func addAttempt(t *testing.T, m *store.Memory, id, lessonID string, pct float64) {
	t.Helper()
	err := m.Tests().Create(context.Background(), &store.Test{
		ID:         id,
		LessonID:   lessonID,
		Submitted:  true,
		Percentage: pct,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("seed test: %v", err)
	}
}

func TestRecomputeLesson_MeanOverAllAttempts(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	seed(t, m, 1)
	svc := New(m.Topics(), m.Lessons(), m.Tests())

	addAttempt(t, m, "x1", "a", 50)
	addAttempt(t, m, "x2", "a", 100)

	avg, err := svc.RecomputeLesson(ctx, "a")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if avg != 75 {
		t.Fatalf("lesson average = %v, want 75", avg)
	}

	lesson, _ := m.Lessons().Get(ctx, "a")
	if lesson.AverageScore != 75 {
		t.Fatalf("persisted average = %v, want 75", lesson.AverageScore)
	}
}

func TestRecomputeTopic_MeanOfLessonAverages(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	seed(t, m, 2)
	svc := New(m.Topics(), m.Lessons(), m.Tests())

	addAttempt(t, m, "x1", "a", 80)
	addAttempt(t, m, "x2", "b", 60)

	if _, err := svc.RecomputeLesson(ctx, "a"); err != nil {
		t.Fatalf("recompute a: %v", err)
	}
	if _, err := svc.RecomputeLesson(ctx, "b"); err != nil {
		t.Fatalf("recompute b: %v", err)
	}

	topic, _ := m.Topics().Get(ctx, "t1")
	if topic.AverageScore != 70 {
		t.Fatalf("topic average = %v, want 70", topic.AverageScore)
	}
}

func TestRecomputeLesson_NoAttemptsIsZero(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	seed(t, m, 1)
	svc := New(m.Topics(), m.Lessons(), m.Tests())

	avg, err := svc.RecomputeLesson(ctx, "a")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if avg != 0 {
		t.Fatalf("average = %v, want 0", avg)
	}
}

func TestCompleteLesson(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	seed(t, m, 3)
	svc := New(m.Topics(), m.Lessons(), m.Tests())

	if err := svc.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	if err := svc.CompleteLesson(ctx, "b"); err != nil {
		t.Fatalf("complete b: %v", err)
	}
	// Completing twice must not double count.
	if err := svc.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("complete a again: %v", err)
	}

	topic, _ := m.Topics().Get(ctx, "t1")
	if topic.CompletedLessons != 2 {
		t.Fatalf("completed = %d, want 2", topic.CompletedLessons)
	}

	lesson, _ := m.Lessons().Get(ctx, "a")
	if !lesson.Completed {
		t.Fatal("lesson must be marked completed")
	}
}
