// Package topics manages the topic lifecycle: creation, rename,
// deletion and listing. Curriculum generation lives in the curriculum
// package.
package topics

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/store"
)

// Service manages Topic documents and their owned lessons and tests.
type Service struct {
	topics  store.TopicRepo
	lessons store.LessonRepo
	tests   store.TestRepo
}

// NewService creates a topic service.
func NewService(topics store.TopicRepo, lessons store.LessonRepo, tests store.TestRepo) *Service {
	return &Service{topics: topics, lessons: lessons, tests: tests}
}

// CreateInput describes a new topic. Either Title or FileRefs must be
// set; when only files are given, the first file's name becomes the
// topic title.
type CreateInput struct {
	UserID        string
	Title         string
	FileRefs      []string
	TeachingStyle string
	Model         string
}

// Create validates the input and persists a new topic. The model id is
// resolved here, once, and reused for every downstream call on this
// topic's lessons and tests.
func (s *Service) Create(ctx context.Context, in CreateInput) (*store.Topic, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if in.Title == "" && len(in.FileRefs) == 0 {
		return nil, fmt.Errorf("a topic needs a title or at least one source file")
	}
	if !validStyle(in.TeachingStyle) {
		return nil, fmt.Errorf("unknown teaching style: %q", in.TeachingStyle)
	}
	if !llm.KnownModel(in.Model) {
		return nil, fmt.Errorf("unknown model id: %q", in.Model)
	}

	title := in.Title
	if title == "" {
		title = titleFromFile(in.FileRefs[0])
	}

	topic := &store.Topic{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		Title:         title,
		TeachingStyle: in.TeachingStyle,
		AIModel:       in.Model,
		FileRefs:      in.FileRefs,
	}

	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// Get returns the topic by id.
func (s *Service) Get(ctx context.Context, id string) (*store.Topic, error) {
	return s.topics.Get(ctx, id)
}

// List returns all topics owned by the user.
func (s *Service) List(ctx context.Context, userID string) ([]*store.Topic, error) {
	return s.topics.ListByUser(ctx, userID)
}

// Rename updates the topic title.
func (s *Service) Rename(ctx context.Context, id, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	topic, err := s.topics.Get(ctx, id)
	if err != nil {
		return err
	}
	topic.Title = title
	return s.topics.Update(ctx, topic)
}

// Delete removes the topic together with its lessons and their tests.
func (s *Service) Delete(ctx context.Context, id string) error {
	lessons, err := s.lessons.ListByTopic(ctx, id)
	if err != nil {
		return err
	}
	for _, l := range lessons {
		if err := s.tests.DeleteByLesson(ctx, l.ID); err != nil {
			return err
		}
	}
	if err := s.lessons.DeleteByTopic(ctx, id); err != nil {
		return err
	}
	return s.topics.Delete(ctx, id)
}

func validStyle(style string) bool {
	switch style {
	case store.StyleSimple, store.StyleIntermediate, store.StyleAdvanced:
		return true
	}
	return false
}

func titleFromFile(ref string) string {
	base := filepath.Base(ref)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
