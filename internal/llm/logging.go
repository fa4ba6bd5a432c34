package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jhalilaj/my-ai/internal/store"
)

// LoggingProvider is a decorator that records every model request as an
// event in the store and traces it through the structured logger.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	log       *zap.Logger
}

// WithLogging wraps a Provider with event recording and request tracing.
// A nil repo disables recording; a nil logger disables tracing.
func WithLogging(p Provider, repo store.EventRepo, log *zap.Logger) Provider {
	if repo == nil && log == nil {
		return p
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, eventRepo: repo, log: log}
}

func (l *LoggingProvider) GenerateText(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.GenerateText(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latencyMs,
		Success:   err == nil,
		Prompt:    req.Prompt,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.Reply = resp.Text
	}

	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("model request failed",
			zap.String("model", data.Model),
			zap.String("purpose", purpose),
			zap.Int64("latency_ms", latencyMs),
			zap.Error(err))
	} else {
		l.log.Debug("model request",
			zap.String("model", data.Model),
			zap.String("purpose", purpose),
			zap.Int64("latency_ms", latencyMs),
			zap.Int("input_tokens", data.InputTokens),
			zap.Int("output_tokens", data.OutputTokens))
	}

	// Record the event but don't fail the request if recording fails.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("failed to record model request event", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
