package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jhalilaj/my-ai/internal/store"
)

// failingEventRepo rejects every append.
type failingEventRepo struct{}

func (failingEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return errors.New("disk full")
}

func (failingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}

func (failingEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func TestLogging_RecordFailureWarnsWithoutFailingRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(MockResponse{Text: "hello"})
	p := WithLogging(mock, failingEventRepo{}, zap.New(core))

	resp, err := p.GenerateText(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("a recording failure must not fail the request: %v", err)
	}
	if resp.Text != "hello" {
		t.Fatalf("text = %q, want hello", resp.Text)
	}

	warns := logs.FilterMessage("failed to record model request event").All()
	if len(warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warns))
	}
	if warns[0].Level != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", warns[0].Level)
	}
}

func TestLogging_TracesRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithLogging(mock, nil, zap.New(core))

	ctx := WithPurpose(context.Background(), "grading")
	if _, err := p.GenerateText(ctx, Request{Prompt: "one"}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.GenerateText(ctx, Request{Prompt: "two"}); err == nil {
		t.Fatal("second call should fail")
	}

	ok := logs.FilterMessage("model request").All()
	if len(ok) != 1 {
		t.Fatalf("expected 1 trace entry, got %d", len(ok))
	}
	if got := ok[0].ContextMap()["purpose"]; got != "grading" {
		t.Fatalf("purpose = %v, want grading", got)
	}

	failed := logs.FilterMessage("model request failed").All()
	if len(failed) != 1 {
		t.Fatalf("expected 1 failure entry, got %d", len(failed))
	}
	if failed[0].Level != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", failed[0].Level)
	}
}
