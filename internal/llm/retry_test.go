package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "hello"},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.GenerateText(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hello" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Text: "ok"},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.GenerateText(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.GenerateText(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitRespected(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond}},
		MockResponse{Text: "ok"},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.GenerateText(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider()
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GenerateText(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() > 1 {
		t.Fatalf("canceled request must not be retried, got %d calls", mock.CallCount())
	}
}

func TestRetry_EmptyReplyRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrEmptyReply{Model: "mock"}},
		MockResponse{Err: &ErrEmptyReply{Model: "mock"}},
		MockResponse{Err: &ErrEmptyReply{Model: "mock"}},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.GenerateText(context.Background(), Request{})
	var empty *ErrEmptyReply
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("empty reply gets exactly one retry, got %d calls", mock.CallCount())
	}
}
