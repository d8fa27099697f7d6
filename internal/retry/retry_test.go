package retry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newRecording(maxAttempts int, base time.Duration) (*Executor, *[]time.Duration) {
	e := New(maxAttempts, base, 0, testLogger())
	var delays []time.Duration
	e.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return e, &delays
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	e, delays := newRecording(4, 2*time.Second)

	calls := 0
	err := e.Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *delays)
}

func TestDo_BackoffIsExponential(t *testing.T) {
	e, delays := newRecording(4, 2000*time.Millisecond)

	calls := 0
	err := e.Do(context.Background(), func() error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls)
	assert.Equal(t, []time.Duration{
		2000 * time.Millisecond,
		4000 * time.Millisecond,
		8000 * time.Millisecond,
	}, *delays)
	assert.ErrorContains(t, err, "after 4 attempts")
}

func TestDo_StopsOnSuccessMidway(t *testing.T) {
	e, delays := newRecording(4, time.Second)

	calls := 0
	err := e.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *delays)
}

func TestDo_MaxDelayCapsBackoff(t *testing.T) {
	e := New(5, time.Second, 3*time.Second, testLogger())
	var delays []time.Duration
	e.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	_ = e.Do(context.Background(), func() error { return errors.New("boom") })

	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second,
	}, delays)
}

func TestDo_PermanentErrorNotRetried(t *testing.T) {
	e, delays := newRecording(4, time.Second)

	calls := 0
	err := e.Do(context.Background(), func() error {
		calls++
		return &StatusError{Code: 404}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *delays)

	var se *StatusError
	assert.ErrorAs(t, err, &se)
}

func TestDo_RateLimitStaysRetryable(t *testing.T) {
	e, _ := newRecording(2, time.Second)

	calls := 0
	err := e.Do(context.Background(), func() error {
		calls++
		return &StatusError{Code: 429}
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	e := New(3, time.Minute, 0, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Do(ctx, func() error { return errors.New("boom") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoGeneric_ReturnsValue(t *testing.T) {
	e, _ := newRecording(3, time.Second)

	calls := 0
	got, err := Do(context.Background(), e, func() ([]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return []string{"a", "b"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(&StatusError{Code: 400}))
	assert.True(t, IsPermanent(&StatusError{Code: 404}))
	assert.False(t, IsPermanent(&StatusError{Code: 408}))
	assert.False(t, IsPermanent(&StatusError{Code: 429}))
	assert.False(t, IsPermanent(&StatusError{Code: 500}))
	assert.False(t, IsPermanent(errors.New("plain")))
}
