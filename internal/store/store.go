package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store holds the gorm handle and provides access to repositories.
type Store struct {
	db *gorm.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(
		&Topic{},
		&Lesson{},
		&Test{},
		&Chat{},
		&LLMRequestEvent{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying gorm handle for raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Topics returns a TopicRepo backed by this store.
func (s *Store) Topics() TopicRepo { return &topicRepo{db: s.db} }

// Lessons returns a LessonRepo backed by this store.
func (s *Store) Lessons() LessonRepo { return &lessonRepo{db: s.db} }

// Tests returns a TestRepo backed by this store.
func (s *Store) Tests() TestRepo { return &testRepo{db: s.db} }

// Chats returns a ChatRepo backed by this store.
func (s *Store) Chats() ChatRepo { return &chatRepo{db: s.db} }

// Events returns an EventRepo backed by this store.
func (s *Store) Events() EventRepo { return &eventRepo{db: s.db} }

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MYAI_DB environment variable
// 2. $XDG_DATA_HOME/myai/myai.db
// 3. ~/.local/share/myai/myai.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MYAI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "myai", "myai.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
