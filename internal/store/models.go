package store

import (
	"time"

	"gorm.io/datatypes"
)

// Teaching depth settings a topic can be created with.
const (
	StyleSimple       = "Simple"
	StyleIntermediate = "Intermediate"
	StyleAdvanced     = "Advanced"
)

// Question types. MCQ is graded by index comparison; theory and
// practical are graded by rubric calls.
const (
	QuestionMCQ       = "mcq"
	QuestionTheory    = "theory"
	QuestionPractical = "practical"
)

// Topic is a user-initiated curriculum request and its generated lesson
// set. A topic is owned exclusively by its creating user, and its model
// id is fixed at creation.
type Topic struct {
	ID               string `gorm:"primaryKey"`
	UserID           string `gorm:"index"`
	Title            string
	TeachingStyle    string
	AIModel          string
	FileRefs         datatypes.JSONSlice[string]
	LessonIDs        datatypes.JSONSlice[string]
	TotalLessons     int
	CompletedLessons int
	AverageScore     float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Lesson is one synthesized instructional unit covering a content
// section. The body is opaque prose; only the completion flag and
// average score change after creation.
type Lesson struct {
	ID           string `gorm:"primaryKey"`
	TopicID      string `gorm:"index"`
	Ordinal      int
	Title        string
	Content      string
	Completed    bool
	AverageScore float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Question is a single generated assessment item.
type Question struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Answer is one submitted answer: an option index for MCQs, free text
// for open questions.
type Answer struct {
	Choice *int   `json:"choice,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Feedback is the rubric-grading result for one open question.
type Feedback struct {
	QuestionIndex int     `json:"questionIndex"`
	Type          string  `json:"type"`
	Feedback      string  `json:"feedback"`
	Score         float64 `json:"score"`
}

// Test is a generated assessment for a lesson. The lesson's current
// test is the latest by creation time; older tests remain as history
// for score aggregation. Submission results are overwritten in place on
// each attempt.
//
// Invariant: len(Questions) == len(CorrectAnswers). CorrectAnswers
// holds a 0-based option index for MCQs and nil for open questions.
type Test struct {
	ID             string `gorm:"primaryKey"`
	LessonID       string `gorm:"index"`
	Questions      datatypes.JSONSlice[Question]
	CorrectAnswers datatypes.JSONSlice[*int]
	UserAnswers    datatypes.JSONSlice[Answer]
	Feedback       datatypes.JSONSlice[Feedback]
	Submitted      bool
	Score          float64
	Percentage     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChatMessage is one turn in a lesson-scoped tutor conversation.
type ChatMessage struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Chat holds the tutor conversation for one (lesson, user) pair.
type Chat struct {
	ID        string `gorm:"primaryKey"`
	LessonID  string `gorm:"index"`
	UserID    string `gorm:"index"`
	Messages  datatypes.JSONSlice[ChatMessage]
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LLMRequestEvent records a single model API call for inspection.
type LLMRequestEvent struct {
	ID           int `gorm:"primaryKey;autoIncrement"`
	Timestamp    time.Time
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
