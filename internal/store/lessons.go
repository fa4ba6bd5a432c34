package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type lessonRepo struct {
	db *gorm.DB
}

func (r *lessonRepo) Create(ctx context.Context, l *Lesson) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) Get(ctx context.Context, id string) (*Lesson, error) {
	var l Lesson
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return &l, nil
}

func (r *lessonRepo) ListByTopic(ctx context.Context, topicID string) ([]*Lesson, error) {
	var lessons []*Lesson
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("ordinal").
		Find(&lessons).Error
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

func (r *lessonRepo) Update(ctx context.Context, l *Lesson) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) DeleteByTopic(ctx context.Context, topicID string) error {
	if err := r.db.WithContext(ctx).Delete(&Lesson{}, "topic_id = ?", topicID).Error; err != nil {
		return fmt.Errorf("delete lessons: %w", err)
	}
	return nil
}
