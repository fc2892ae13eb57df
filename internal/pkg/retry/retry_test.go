package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/retry"
)

func fastConfig() *retry.RetryConfig {
	return &retry.RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fastConfig(), zap.NewNop(), "ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ReturnsLastError(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fastConfig(), zap.NewNop(), "ping", func() error {
		calls++
		return errors.New("still down")
	})

	require.Error(t, err)
	assert.EqualError(t, err, "still down")
	assert.Equal(t, 3, calls)
}

func TestDefaultRetryConfig(t *testing.T) {
	t.Parallel()

	rc := retry.DefaultRetryConfig()
	assert.Equal(t, uint(5), rc.Attempts)
	assert.Less(t, rc.Delay, rc.MaxDelay)
	assert.Len(t, rc.ToRetryOptions(), 5)
}
