package bigc

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.ObserveRequest("GET", OutcomeSuccess, 3, 120*time.Millisecond)
	metrics.ObserveRequest("GET", "not_found", 1, 10*time.Millisecond)
	metrics.ObserveRequest("POST", OutcomeSuccess, 1, 5*time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.requests.WithLabelValues("GET", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.requests.WithLabelValues("GET", "not_found")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.attempts.WithLabelValues("GET")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.attempts.WithLabelValues("POST")), 0)

	count, err := testutil.GatherAndCount(reg, "bigc_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Nil(t *testing.T) {
	t.Parallel()

	var metrics *Metrics

	assert.NotPanics(t, func() {
		metrics.ObserveRequest("GET", OutcomeSuccess, 1, time.Second)
	})
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, "not_found", Outcome(fmt.Errorf("wrapped: %w", NewError(ErrNotFound, ""))))
	assert.Equal(t, "network_error", Outcome(&APIError{Kind: ErrNetwork}))
	assert.Equal(t, OutcomeCanceled, Outcome(context.Canceled))
	assert.Equal(t, OutcomeError, Outcome(ErrUnexpectedPayload))
}
