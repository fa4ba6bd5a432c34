package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type eventRepo struct {
	db *gorm.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	event := LLMRequestEvent{
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
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("save model request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error) {
	q := r.db.WithContext(ctx).Order("id DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		q = q.Where("timestamp >= ?", opts.From)
	}

	var events []*LLMRequestEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	var e LLMRequestEvent
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}
