package googleclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func fastRetrier() *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: time.Millisecond,
		maxInterval:     time.Millisecond,
		maxElapsedTime:  time.Second,
		logger:          zerolog.Nop(),
	}
}

func TestRetryQuotaErrorThenSuccess(t *testing.T) {
	calls := 0
	err := fastRetrier().Retry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &googleapi.Error{Code: http.StatusTooManyRequests}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPermanentError(t *testing.T) {
	permanent := &googleapi.Error{Code: http.StatusNotFound}
	calls := 0
	err := fastRetrier().Retry(context.Background(), func() error {
		calls++
		return permanent
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryNonAPIError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := fastRetrier().Retry(context.Background(), func() error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryExhaustsBudget(t *testing.T) {
	calls := 0
	err := fastRetrier().Retry(context.Background(), func() error {
		calls++
		return &googleapi.Error{Code: http.StatusServiceUnavailable}
	})
	require.Error(t, err)
	assert.Equal(t, 5, calls)
}
