package topics

import (
	"context"
	"testing"

	"github.com/jhalilaj/my-ai/internal/store"
)

func newService(m *store.Memory) *Service {
	return NewService(m.Topics(), m.Lessons(), m.Tests())
}

func validInput() CreateInput {
	return CreateInput{
		UserID:        "u1",
		Title:         "Operating Systems",
		TeachingStyle: store.StyleIntermediate,
		Model:         "gpt",
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService(store.NewMemory())

	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing user", func(in *CreateInput) { in.UserID = "" }},
		{"no title or files", func(in *CreateInput) { in.Title = "" }},
		{"bad style", func(in *CreateInput) { in.TeachingStyle = "Expert" }},
		{"bad model", func(in *CreateInput) { in.Model = "bard" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, err := svc.Create(ctx, in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreate_TitleFromFile(t *testing.T) {
	ctx := context.Background()
	svc := newService(store.NewMemory())

	in := validInput()
	in.Title = ""
	in.FileRefs = []string{"/notes/linear_algebra.txt", "/notes/extra.txt"}

	topic, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if topic.Title != "linear_algebra" {
		t.Fatalf("title = %q, want linear_algebra", topic.Title)
	}
	if topic.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	svc := newService(m)

	topic, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Rename(ctx, topic.ID, "  "); err == nil {
		t.Fatal("expected error for blank title")
	}
	if err := svc.Rename(ctx, topic.ID, "OS Deep Dive"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	got, err := svc.Get(ctx, topic.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "OS Deep Dive" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	svc := newService(m)

	topic, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	lesson := &store.Lesson{ID: "l1", TopicID: topic.ID, Title: "Lesson 1: Processes"}
	if err := m.Lessons().Create(ctx, lesson); err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	if err := m.Tests().Create(ctx, &store.Test{ID: "x1", LessonID: "l1"}); err != nil {
		t.Fatalf("create test: %v", err)
	}

	if err := svc.Delete(ctx, topic.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := m.Topics().Get(ctx, topic.ID); err == nil {
		t.Fatal("topic still present")
	}
	if lessons, _ := m.Lessons().ListByTopic(ctx, topic.ID); len(lessons) != 0 {
		t.Fatal("lessons still present")
	}
	if latest, _ := m.Tests().Latest(ctx, "l1"); latest != nil {
		t.Fatal("tests still present")
	}
}
