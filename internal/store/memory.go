package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory implementation of all repositories.
// It is used by service tests; semantics mirror the gorm-backed repos.
type Memory struct {
	mu      sync.Mutex
	topics  map[string]*Topic
	lessons map[string]*Lesson
	tests   map[string]*Test
	chats   map[string]*Chat
	events  []*LLMRequestEvent
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		topics:  make(map[string]*Topic),
		lessons: make(map[string]*Lesson),
		tests:   make(map[string]*Test),
		chats:   make(map[string]*Chat),
	}
}

func (m *Memory) Topics() TopicRepo   { return (*memTopics)(m) }
func (m *Memory) Lessons() LessonRepo { return (*memLessons)(m) }
func (m *Memory) Tests() TestRepo     { return (*memTests)(m) }
func (m *Memory) Chats() ChatRepo     { return (*memChats)(m) }
func (m *Memory) Events() EventRepo   { return (*memEvents)(m) }

type memTopics Memory

func (m *memTopics) Create(_ context.Context, t *Topic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	cp := *t
	m.topics[t.ID] = &cp
	return nil
}

func (m *memTopics) Get(_ context.Context, id string) (*Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.topics[id]
	if !ok {
		return nil, fmt.Errorf("topic %s: %w", id, ErrNotFound)
	}
	cp := *t
	return &cp, nil
}

func (m *memTopics) ListByUser(_ context.Context, userID string) ([]*Topic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Topic
	for _, t := range m.topics {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memTopics) Update(_ context.Context, t *Topic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.topics[t.ID]; !ok {
		return fmt.Errorf("topic %s: %w", t.ID, ErrNotFound)
	}
	cp := *t
	m.topics[t.ID] = &cp
	return nil
}

func (m *memTopics) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.topics, id)
	return nil
}

type memLessons Memory

func (m *memLessons) Create(_ context.Context, l *Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	cp := *l
	m.lessons[l.ID] = &cp
	return nil
}

func (m *memLessons) Get(_ context.Context, id string) (*Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lessons[id]
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (m *memLessons) ListByTopic(_ context.Context, topicID string) ([]*Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Lesson
	for _, l := range m.lessons {
		if l.TopicID == topicID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out, nil
}

func (m *memLessons) Update(_ context.Context, l *Lesson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lessons[l.ID]; !ok {
		return fmt.Errorf("lesson %s: %w", l.ID, ErrNotFound)
	}
	cp := *l
	m.lessons[l.ID] = &cp
	return nil
}

func (m *memLessons) DeleteByTopic(_ context.Context, topicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.lessons {
		if l.TopicID == topicID {
			delete(m.lessons, id)
		}
	}
	return nil
}

type memTests Memory

func (m *memTests) Create(_ context.Context, t *Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	cp := *t
	m.tests[t.ID] = &cp
	return nil
}

func (m *memTests) Get(_ context.Context, id string) (*Test, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tests[id]
	if !ok {
		return nil, fmt.Errorf("test %s: %w", id, ErrNotFound)
	}
	cp := *t
	return &cp, nil
}

func (m *memTests) Latest(_ context.Context, lessonID string) (*Test, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *Test
	for _, t := range m.tests {
		if t.LessonID != lessonID {
			continue
		}
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (m *memTests) ListByLesson(_ context.Context, lessonID string) ([]*Test, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Test
	for _, t := range m.tests {
		if t.LessonID == lessonID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memTests) Update(_ context.Context, t *Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tests[t.ID]; !ok {
		return fmt.Errorf("test %s: %w", t.ID, ErrNotFound)
	}
	cp := *t
	m.tests[t.ID] = &cp
	return nil
}

func (m *memTests) DeleteByLesson(_ context.Context, lessonID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.tests {
		if t.LessonID == lessonID {
			delete(m.tests, id)
		}
	}
	return nil
}

type memChats Memory

func (m *memChats) Find(_ context.Context, lessonID, userID string) (*Chat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.chats {
		if c.LessonID == lessonID && c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memChats) Create(_ context.Context, c *Chat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.chats[c.ID] = &cp
	return nil
}

func (m *memChats) Update(_ context.Context, c *Chat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.chats[c.ID]; !ok {
		return fmt.Errorf("chat %s: %w", c.ID, ErrNotFound)
	}
	cp := *c
	m.chats[c.ID] = &cp
	return nil
}

type memEvents Memory

func (m *memEvents) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, &LLMRequestEvent{
		ID:           len(m.events) + 1,
		Timestamp:    time.Now().UTC(),
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		Prompt:       data.Prompt,
		Reply:        data.Reply,
	})
	return nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*LLMRequestEvent
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if !opts.From.IsZero() && e.Timestamp.Before(opts.From) {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memEvents) GetLLMEvent(_ context.Context, id int) (*LLMRequestEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || id > len(m.events) {
		return nil, nil
	}
	cp := *m.events[id-1]
	return &cp, nil
}
