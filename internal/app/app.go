package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jhalilaj/my-ai/internal/curriculum"
	"github.com/jhalilaj/my-ai/internal/grading"
	"github.com/jhalilaj/my-ai/internal/ingest"
	"github.com/jhalilaj/my-ai/internal/llm"
	"github.com/jhalilaj/my-ai/internal/progress"
	"github.com/jhalilaj/my-ai/internal/store"
	"github.com/jhalilaj/my-ai/internal/testgen"
	"github.com/jhalilaj/my-ai/internal/topics"
	"github.com/jhalilaj/my-ai/internal/tutor"
)

// App wires the store, the model gateway and every service together.
// Commands build one App per invocation and close it when done.
type App struct {
	Log     *zap.Logger
	Store   *store.Store
	Models  *llm.Factory
	Config  llm.Config
	Topics  *topics.Service
	Lessons *curriculum.Service
	Tests   *testgen.Service
	Grader  *grading.Service
	Learn   *progress.Service
	Tutor   *tutor.Service
}

// New opens the database at dbPath and assembles the service graph.
// Image generation is optional: when no OpenAI-compatible key is
// configured the tutor runs text-only.
func New(dbPath string) (*App, error) {
	log := LoggerFromEnv()

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cfg := llm.ConfigFromEnv()
	factory := llm.NewFactory(cfg, st.Events(), log)

	images, err := factory.ImageProvider()
	if err != nil {
		log.Debug("image generation unavailable", zap.Error(err))
		images = nil
	}

	topicRepo := st.Topics()
	lessonRepo := st.Lessons()
	testRepo := st.Tests()

	prog := progress.New(topicRepo, lessonRepo, testRepo)

	a := &App{
		Log:     log,
		Store:   st,
		Models:  factory,
		Config:  cfg,
		Topics:  topics.NewService(topicRepo, lessonRepo, testRepo),
		Lessons: curriculum.New(factory, topicRepo, lessonRepo, ingest.PlainText{}, cfg.Retry),
		Tests:   testgen.New(factory, topicRepo, lessonRepo, testRepo, cfg.Retry),
		Grader:  grading.New(factory, topicRepo, lessonRepo, testRepo, prog, cfg.Retry),
		Learn:   prog,
		Tutor:   tutor.New(factory, images, topicRepo, lessonRepo, st.Chats(), cfg.Retry),
	}
	return a, nil
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.Store.Close()
}
