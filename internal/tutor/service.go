package tutor

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/store"
)

// imageRequest matches an explicit image imperative anywhere in the
// prompt. Only these phrasings trigger image generation; everything
// else is answered as text.
var imageRequest = regexp.MustCompile(`(?i)generate an image|show me an image|create an image`)

const tutorSystem = "You are a patient AI tutor. Answer the student's question using the lesson below as primary context. Keep answers focused on the lesson's subject."

// Reply is one tutor answer.
type Reply struct {
	Text     string
	ImageURL string
}

// Service runs lesson-scoped tutoring conversations.
type Service struct {
	models  llm.Resolver
	images  llm.ImageProvider
	topics  store.TopicRepo
	lessons store.LessonRepo
	chats   store.ChatRepo
	retry   llm.RetryConfig
}

func New(models llm.Resolver, images llm.ImageProvider, topics store.TopicRepo, lessons store.LessonRepo, chats store.ChatRepo, retry llm.RetryConfig) *Service {
	return &Service{
		models:  models,
		images:  images,
		topics:  topics,
		lessons: lessons,
		chats:   chats,
		retry:   retry,
	}
}

// Ask answers one student prompt in the context of a lesson. Image
// imperatives go to the image backend; everything else goes to the
// topic's text model with the lesson and recent turns as context.
// Both sides of the exchange are appended to the per-lesson chat.
func (s *Service) Ask(ctx context.Context, lessonID, userID, prompt string) (*Reply, error) {
	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	chat, err := s.chats.Find(ctx, lessonID, userID)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "chat")

	var reply Reply
	if imageRequest.MatchString(prompt) {
		if s.images == nil {
			return nil, fmt.Errorf("image generation is not configured")
		}
		url, err := s.images.GenerateImage(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("generate image: %w", err)
		}
		reply = Reply{Text: "Here is the image you asked for.", ImageURL: url}
	} else {
		topic, err := s.topics.Get(ctx, lesson.TopicID)
		if err != nil {
			return nil, err
		}
		base, err := s.models.ForModel(ctx, topic.AIModel)
		if err != nil {
			return nil, err
		}
		provider := llm.WithRetry(base, s.retry)

		resp, err := provider.GenerateText(ctx, llm.Request{
			System: tutorSystem,
			Prompt: buildChatPrompt(lesson, chat, prompt),
		})
		if err != nil {
			return nil, err
		}
		reply = Reply{Text: resp.Text}
	}

	if err := s.record(ctx, chat, lessonID, userID, prompt, reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// History returns the conversation so far, oldest first.
func (s *Service) History(ctx context.Context, lessonID, userID string) ([]store.ChatMessage, error) {
	chat, err := s.chats.Find(ctx, lessonID, userID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, nil
	}
	return chat.Messages, nil
}

// recentTurns bounds how much history is replayed into the prompt.
const recentTurns = 10

func buildChatPrompt(lesson *store.Lesson, chat *store.Chat, prompt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lesson %q:\n%s\n\n", lesson.Title, lesson.Content)

	if chat != nil && len(chat.Messages) > 0 {
		msgs := chat.Messages
		if len(msgs) > recentTurns {
			msgs = msgs[len(msgs)-recentTurns:]
		}
		b.WriteString("Conversation so far:\n")
		for _, m := range msgs {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Student: %s", prompt)
	return b.String()
}

func (s *Service) record(ctx context.Context, chat *store.Chat, lessonID, userID, prompt string, reply Reply) error {
	now := time.Now()
	user := store.ChatMessage{Role: "user", Content: prompt}
	assistant := store.ChatMessage{Role: "assistant", Content: reply.Text, ImageURL: reply.ImageURL}

	if chat == nil {
		chat = &store.Chat{
			ID:        uuid.NewString(),
			LessonID:  lessonID,
			UserID:    userID,
			CreatedAt: now,
		}
		chat.Messages = append(chat.Messages, user, assistant)
		chat.UpdatedAt = now
		return s.chats.Create(ctx, chat)
	}

	chat.Messages = append(chat.Messages, user, assistant)
	chat.UpdatedAt = now
	return s.chats.Update(ctx, chat)
}
