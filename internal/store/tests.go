package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type testRepo struct {
	db *gorm.DB
}

func (r *testRepo) Create(ctx context.Context, t *Test) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create test: %w", err)
	}
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (*Test, error) {
	var t Test
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("test %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	return &t, nil
}

func (r *testRepo) Latest(ctx context.Context, lessonID string) (*Test, error) {
	var t Test
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest test: %w", err)
	}
	return &t, nil
}

func (r *testRepo) ListByLesson(ctx context.Context, lessonID string) ([]*Test, error) {
	var tests []*Test
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	return tests, nil
}

func (r *testRepo) Update(ctx context.Context, t *Test) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("update test: %w", err)
	}
	return nil
}

func (r *testRepo) DeleteByLesson(ctx context.Context, lessonID string) error {
	if err := r.db.WithContext(ctx).Delete(&Test{}, "lesson_id = ?", lessonID).Error; err != nil {
		return fmt.Errorf("delete tests: %w", err)
	}
	return nil
}
