package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the backend returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model backend unavailable: %v", e.Err)
	}
	return "model backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyReply indicates the backend call succeeded but carried no
// usable content. Callers treat this the same as a failed call.
type ErrEmptyReply struct {
	Model string
}

func (e *ErrEmptyReply) Error() string {
	return fmt.Sprintf("model %s returned an empty reply", e.Model)
}

// ErrTimeout indicates a single generation call exceeded its bounded
// per-call deadline.
type ErrTimeout struct {
	After time.Duration
	Err   error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("generation timed out after %s", e.After)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }
