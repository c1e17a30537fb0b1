// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape returns the exposition text of m.
func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_RequestFinished(t *testing.T) {
	m := New()

	m.RequestStarted()
	m.RequestStarted()
	assert.Contains(t, scrape(t, m), "restaurant_directory_http_requests_in_flight 2")

	m.RequestFinished(http.MethodGet, "/api/restaurant/{id}", http.StatusOK, 20*time.Millisecond)
	m.RequestFinished(http.MethodGet, "/api/restaurant/{id}", http.StatusNotFound, 5*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, "restaurant_directory_http_requests_in_flight 0")
	assert.Contains(t, body, `restaurant_directory_http_requests_total{method="GET",route="/api/restaurant/{id}",status="200"} 1`)
	assert.Contains(t, body, `restaurant_directory_http_requests_total{method="GET",route="/api/restaurant/{id}",status="404"} 1`)
	assert.Contains(t, body, `restaurant_directory_http_request_duration_seconds_count{method="GET",route="/api/restaurant/{id}"} 2`)
}

func TestMetrics_Sweeper(t *testing.T) {
	m := New()

	m.TokensPurged(3)
	m.TokensPurged(0)
	m.SweepFailed()

	body := scrape(t, m)
	assert.Contains(t, body, "restaurant_directory_revocation_purged_tokens_total 3")
	assert.Contains(t, body, "restaurant_directory_revocation_sweep_errors_total 1")
}

func TestMetrics_Handler_IncludesRuntimeCollectors(t *testing.T) {
	assert.Contains(t, scrape(t, New()), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		first := New()
		second := New()
		assert.NotSame(t, first.Registry(), second.Registry())
	})
}
