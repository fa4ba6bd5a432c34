package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks a lookup for an absent topic, lesson, test or chat.
// Always wrapped with the entity kind and id.
var ErrNotFound = errors.New("not found")

// TopicRepo manages Topic documents.
type TopicRepo interface {
	Create(ctx context.Context, t *Topic) error
	Get(ctx context.Context, id string) (*Topic, error)
	ListByUser(ctx context.Context, userID string) ([]*Topic, error)
	Update(ctx context.Context, t *Topic) error
	Delete(ctx context.Context, id string) error
}

// LessonRepo manages Lesson documents.
type LessonRepo interface {
	Create(ctx context.Context, l *Lesson) error
	Get(ctx context.Context, id string) (*Lesson, error)
	// ListByTopic returns the topic's lessons ordered by ordinal.
	ListByTopic(ctx context.Context, topicID string) ([]*Lesson, error)
	Update(ctx context.Context, l *Lesson) error
	DeleteByTopic(ctx context.Context, topicID string) error
}

// TestRepo manages Test documents.
type TestRepo interface {
	Create(ctx context.Context, t *Test) error
	Get(ctx context.Context, id string) (*Test, error)
	// Latest returns the lesson's current test (newest by creation
	// time), or nil when the lesson has none.
	Latest(ctx context.Context, lessonID string) (*Test, error)
	// ListByLesson returns every test ever generated for the lesson,
	// newest first.
	ListByLesson(ctx context.Context, lessonID string) ([]*Test, error)
	Update(ctx context.Context, t *Test) error
	DeleteByLesson(ctx context.Context, lessonID string) error
}

// ChatRepo manages tutor conversations.
type ChatRepo interface {
	// Find returns the chat for (lessonID, userID), or nil when none
	// exists yet.
	Find(ctx context.Context, lessonID, userID string) (*Chat, error)
	Create(ctx context.Context, c *Chat) error
	Update(ctx context.Context, c *Chat) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Prompt       string
	Reply        string
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
}
