package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for its context before answering.
type blockingProvider struct{}

func (blockingProvider) GenerateText(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_ExceededBecomesErrTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)

	_, err := p.GenerateText(context.Background(), Request{})
	var to *ErrTimeout
	if !errors.As(err, &to) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestTimeout_ZeroDisables(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "fast"})
	p := WithTimeout(mock, 0)

	resp, err := p.GenerateText(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "fast" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
}

func TestTimeout_CallerCancelPropagates(t *testing.T) {
	p := WithTimeout(blockingProvider{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GenerateText(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
