// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

// revokedTokenRepository is the SQL implementation of
// [RevokedTokenRepository] over the "revoked_tokens" table.
type revokedTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRevokedTokenRepository constructs a [RevokedTokenRepository].
func NewRevokedTokenRepository(db *DB, logger *logger.Logger) RevokedTokenRepository {
	logger.Debug().Msg("creating revoked token repository")
	return &revokedTokenRepository{
		db:     db,
		logger: logger,
	}
}

// Revoke inserts the token into the ledger. The insert ignores an existing
// jti, so revoking twice succeeds and leaves the first entry untouched.
func (r *revokedTokenRepository) Revoke(ctx context.Context, token models.RevokedToken) error {
	log := logger.FromContext(ctx)

	if token.RevokedAt.IsZero() {
		token.RevokedAt = time.Now()
	}

	query, args, err := r.db.buildRevokeTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*revokedTokenRepository.Revoke").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, execErr := tx.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*revokedTokenRepository.Revoke").
			Str("jti", token.JTI).
			Msg("error revoking token")
		return wrapQueryError(err)
	}

	log.Debug().
		Str("func", "*revokedTokenRepository.Revoke").
		Str("jti", token.JTI).
		Str("token_type", string(token.Type)).
		Msg("token revoked")
	return nil
}

// IsRevoked reports whether the ledger holds jti.
func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildIsTokenRevokedQuery(jti)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*revokedTokenRepository.IsRevoked").Str("jti", jti).Msg("error looking up revoked token")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// PurgeExpired deletes ledger entries of tokens that expired before now.
// Such tokens fail verification on expiry alone.
func (r *revokedTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildPurgeRevokedTokensQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var purged int64
	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		purged, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*revokedTokenRepository.PurgeExpired").Msg("error purging revoked tokens")
		return 0, wrapQueryError(err)
	}

	return purged, nil
}
