package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	topic := &Topic{
		ID:            "t1",
		UserID:        "u1",
		Title:         "Databases",
		TeachingStyle: StyleIntermediate,
		AIModel:       "gpt",
		FileRefs:      []string{"notes.txt"},
	}
	require.NoError(t, s.Topics().Create(ctx, topic))

	lesson := &Lesson{ID: "l1", TopicID: "t1", Ordinal: 0, Title: "Lesson 1: Relational Basics", Content: "..."}
	require.NoError(t, s.Lessons().Create(ctx, lesson))

	one := 1
	test := &Test{
		ID:       "x1",
		LessonID: "l1",
		Questions: []Question{
			{Type: QuestionMCQ, Question: "Pick one", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "B"},
			{Type: QuestionTheory, Question: "Explain", CorrectAnswer: "because"},
		},
		CorrectAnswers: []*int{&one, nil},
	}
	require.NoError(t, s.Tests().Create(ctx, test))

	got, err := s.Tests().Get(ctx, "x1")
	require.NoError(t, err)
	require.Len(t, got.Questions, 2)
	require.Equal(t, QuestionMCQ, got.Questions[0].Type)
	require.NotNil(t, got.CorrectAnswers[0])
	require.Equal(t, 1, *got.CorrectAnswers[0])
	require.Nil(t, got.CorrectAnswers[1])

	latest, err := s.Tests().Latest(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, "x1", latest.ID)

	topics, err := s.Topics().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Equal(t, []string{"notes.txt"}, []string(topics[0].FileRefs))
}

func TestStore_LatestNilWithoutTests(t *testing.T) {
	s := openTestStore(t)

	latest, err := s.Tests().Latest(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, latest)
}
