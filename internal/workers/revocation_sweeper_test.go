// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/metrics"
	"github.com/MKhiriev/go-restaurant-directory/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewRevocationSweeper_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewRevocationSweeper(mock.NewMockRevokedTokenRepository(ctrl), config.Workers{}, metrics.New(), logger.Nop())

	assert.Equal(t, config.DefaultRevocationSweepInterval, s.interval)
}

func TestRevocationSweeper_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	tests := []struct {
		name        string
		purged      int64
		err         error
		wantMetrics []string
	}{
		{
			name:        "purges expired entries",
			purged:      4,
			wantMetrics: []string{"restaurant_directory_revocation_purged_tokens_total 4", "restaurant_directory_revocation_sweep_errors_total 0"},
		},
		{
			name:        "store failure is counted",
			err:         errors.New("database is locked"),
			wantMetrics: []string{"restaurant_directory_revocation_purged_tokens_total 0", "restaurant_directory_revocation_sweep_errors_total 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRevokedTokenRepository(ctrl)
			m := metrics.New()

			repo.EXPECT().
				PurgeExpired(gomock.Any(), now.UTC()).
				Return(tt.purged, tt.err)

			s := NewRevocationSweeper(repo, config.Workers{RevocationSweepInterval: time.Minute}, m, logger.Nop())
			s.now = func() time.Time { return now }

			s.sweep(context.Background())

			body := scrape(t, m)
			for _, want := range tt.wantMetrics {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestRevocationSweeper_RunUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRevokedTokenRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 16)
	repo.EXPECT().
		PurgeExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls <- struct{}{}
			return 0, nil
		}).
		MinTimes(2)

	s := NewRevocationSweeper(repo, config.Workers{RevocationSweepInterval: 10 * time.Millisecond}, metrics.New(), logger.Nop())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not sweep")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
