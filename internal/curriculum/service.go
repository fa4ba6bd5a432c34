package curriculum

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhalilaj/my-ai/internal/ingest"
	"github.com/jhalilaj/my-ai/internal/jsonx"
	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/store"
)

// SegmentationError reports that the model's section reply could not
// be parsed into a usable section list. No lessons exist when it is
// returned.
type SegmentationError struct {
	Err error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("content segmentation failed: %v", e.Err)
}

func (e *SegmentationError) Unwrap() error { return e.Err }

// Service turns a topic's source material into an ordered sequence
// of persisted lessons.
type Service struct {
	models    llm.Resolver
	topics    store.TopicRepo
	lessons   store.LessonRepo
	extractor ingest.Extractor
	retry     llm.RetryConfig
}

func New(models llm.Resolver, topics store.TopicRepo, lessons store.LessonRepo, extractor ingest.Extractor, retry llm.RetryConfig) *Service {
	return &Service{
		models:    models,
		topics:    topics,
		lessons:   lessons,
		extractor: extractor,
		retry:     retry,
	}
}

// Generate segments the topic's material and synthesizes one lesson
// per section, in section order. When content is empty the topic's
// file references are extracted instead, falling back to the title.
//
// Lessons already written before a mid-run failure are kept and
// recorded on the topic, so a retry can resume from a consistent
// state.
func (s *Service) Generate(ctx context.Context, topicID, content string) ([]store.Lesson, error) {
	topic, err := s.topics.Get(ctx, topicID)
	if err != nil {
		return nil, err
	}

	if content == "" {
		content, err = s.resolveContent(ctx, topic)
		if err != nil {
			return nil, err
		}
	}

	base, err := s.models.ForModel(ctx, topic.AIModel)
	if err != nil {
		return nil, err
	}
	provider := llm.WithRetry(base, s.retry)

	sections, err := s.segment(ctx, provider, content)
	if err != nil {
		return nil, err
	}

	var (
		created []store.Lesson
		ids     []string
	)
	for i, section := range sections {
		lesson, err := s.synthesize(ctx, provider, topic, section, content, i)
		if err != nil {
			// Keep what we have; the topic stays consistent
			// with the lessons that actually exist.
			s.recordLessons(ctx, topic, ids)
			return created, fmt.Errorf("lesson %d (%s): %w", i+1, section, err)
		}
		created = append(created, *lesson)
		ids = append(ids, lesson.ID)
	}

	if err := s.recordLessons(ctx, topic, ids); err != nil {
		return created, err
	}
	return created, nil
}

// Segment asks the model to divide the material into section titles.
// Provider failures propagate unchanged; an unparseable or empty
// reply becomes a SegmentationError.
func (s *Service) Segment(ctx context.Context, provider llm.Provider, content string) ([]string, error) {
	return s.segment(ctx, provider, content)
}

func (s *Service) segment(ctx context.Context, provider llm.Provider, content string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "segment")
	resp, err := provider.GenerateText(ctx, llm.Request{
		System: segmentSystem,
		Prompt: buildSegmentPrompt(content),
	})
	if err != nil {
		return nil, fmt.Errorf("section generation: %w", err)
	}

	var sections []string
	if err := jsonx.Unmarshal(sectionListSchema, resp.Text, &sections); err != nil {
		return nil, &SegmentationError{Err: err}
	}
	return sections, nil
}

func (s *Service) synthesize(ctx context.Context, provider llm.Provider, topic *store.Topic, section, content string, ordinal int) (*store.Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")
	resp, err := provider.GenerateText(ctx, llm.Request{
		System: lessonSystem,
		Prompt: buildLessonPrompt(section, content, topic.TeachingStyle, ordinal),
	})
	if err != nil {
		return nil, err
	}
	if resp.Text == "" {
		return nil, &llm.ErrEmptyReply{Model: resp.Model}
	}

	lesson := &store.Lesson{
		ID:        uuid.NewString(),
		TopicID:   topic.ID,
		Ordinal:   ordinal,
		Title:     fmt.Sprintf("Lesson %d: %s", ordinal+1, section),
		Content:   resp.Text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.lessons.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *Service) recordLessons(ctx context.Context, topic *store.Topic, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	topic.LessonIDs = append(topic.LessonIDs, ids...)
	topic.TotalLessons = len(topic.LessonIDs)
	return s.topics.Update(ctx, topic)
}

func (s *Service) resolveContent(ctx context.Context, topic *store.Topic) (string, error) {
	if len(topic.FileRefs) > 0 {
		text, err := ingest.ExtractAll(ctx, s.extractor, topic.FileRefs)
		if err != nil {
			return "", fmt.Errorf("extract topic files: %w", err)
		}
		if text != "" {
			return text, nil
		}
	}
	if topic.Title == "" {
		return "", fmt.Errorf("topic %s has no content to teach from", topic.ID)
	}
	return topic.Title, nil
}
