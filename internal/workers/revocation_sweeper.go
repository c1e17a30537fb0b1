// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/metrics"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
)

// RevocationSweeper periodically purges ledger entries of tokens that have
// expired. Such tokens are rejected on expiry alone, so their entries are
// no longer needed.
type RevocationSweeper struct {
	tokens   store.RevokedTokenRepository
	interval time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
	logger   *logger.Logger
}

func NewRevocationSweeper(tokens store.RevokedTokenRepository, cfg config.Workers, metrics *metrics.Metrics, logger *logger.Logger) *RevocationSweeper {
	interval := cfg.RevocationSweepInterval
	if interval <= 0 {
		interval = config.DefaultRevocationSweepInterval
	}

	return &RevocationSweeper{
		tokens:   tokens,
		interval: interval,
		metrics:  metrics,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
// A failed sweep is logged and retried on the next tick.
func (s *RevocationSweeper) Run(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("revocation sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("revocation sweeper stopped")
			return nil
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *RevocationSweeper) sweep(ctx context.Context) {
	purged, err := s.tokens.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.metrics.SweepFailed()
		s.logger.Err(err).Str("func", "*RevocationSweeper.sweep").Msg("error purging expired revoked tokens")
		return
	}

	s.metrics.TokensPurged(purged)
	if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("expired revoked tokens purged")
	}
}
