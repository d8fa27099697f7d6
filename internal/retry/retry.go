package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// StatusError carries an HTTP status code so the executor can tell
// permanent request errors apart from transient ones.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// IsPermanent reports whether err is a 4xx response that no amount of
// retrying will fix. 408 and 429 stay retryable.
func IsPermanent(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	if se.Code == http.StatusRequestTimeout || se.Code == http.StatusTooManyRequests {
		return false
	}
	return se.Code >= 400 && se.Code < 500
}

// Executor retries a fallible operation with exponential backoff:
// baseDelay * 2^(attempt-1) between attempts, no jitter. A terminal
// failure means "no data this round", not a fatal process error.
type Executor struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	logger      *slog.Logger

	// sleep is swapped out in tests to assert delays without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func New(maxAttempts int, baseDelay, maxDelay time.Duration, logger *slog.Logger) *Executor {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Executor{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		maxDelay:    maxDelay,
		logger:      logger,
		sleep:       sleepCtx,
	}
}

// Do runs op until it succeeds, fails permanently, or the attempt
// budget is spent. Successful calls return immediately with no delay
// charged. Operations must be safely retryable (idempotent GETs,
// idempotent upserts).
func (e *Executor) Do(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return err
		}
		if attempt == e.maxAttempts {
			break
		}

		delay := e.backoff(attempt)
		e.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", delay,
			"error", err,
		)
		if serr := e.sleep(ctx, delay); serr != nil {
			return serr
		}
	}
	return fmt.Errorf("after %d attempts: %w", e.maxAttempts, err)
}

// Do runs op through e and returns its value on success.
func Do[T any](ctx context.Context, e *Executor, op func() (T, error)) (T, error) {
	var result T
	err := e.Do(ctx, func() error {
		var opErr error
		result, opErr = op()
		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

func (e *Executor) backoff(attempt int) time.Duration {
	delay := e.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	if e.maxDelay > 0 && delay > e.maxDelay {
		delay = e.maxDelay
	}
	return delay
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
