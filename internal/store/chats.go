package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type chatRepo struct {
	db *gorm.DB
}

func (r *chatRepo) Find(ctx context.Context, lessonID, userID string) (*Chat, error) {
	var c Chat
	err := r.db.WithContext(ctx).
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find chat: %w", err)
	}
	return &c, nil
}

func (r *chatRepo) Create(ctx context.Context, c *Chat) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create chat: %w", err)
	}
	return nil
}

func (r *chatRepo) Update(ctx context.Context, c *Chat) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update chat: %w", err)
	}
	return nil
}
