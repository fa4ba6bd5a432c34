package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type topicRepo struct {
	db *gorm.DB
}

func (r *topicRepo) Create(ctx context.Context, t *Topic) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepo) Get(ctx context.Context, id string) (*Topic, error) {
	var t Topic
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("topic %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return &t, nil
}

func (r *topicRepo) ListByUser(ctx context.Context, userID string) ([]*Topic, error) {
	var topics []*Topic
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (r *topicRepo) Update(ctx context.Context, t *Topic) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("update topic: %w", err)
	}
	return nil
}

func (r *topicRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&Topic{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}
