// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/migrations"
)

// DB is a database handle bound to one SQL dialect. Besides the embedded
// *sql.DB it carries the squirrel statement builder with the dialect's
// placeholder format and the classifier of the dialect's driver errors.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN. The DSN scheme picks the driver:
// "postgres://" and "postgresql://" use pgx, "sqlite://", "file:" and
// ":memory:" use go-sqlite3.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"), cfg.DSN == ":memory:":
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
}

// Migrate applies the embedded schema migrations of the handle's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("error migrating database")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", string(db.dialect)).Msg("database migrated")
	return nil
}

// Dialect returns the SQL dialect of the handle.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.Postgres {
		placeholder = sq.Dollar
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// redactDSN strips credentials from a DSN before it is logged or returned.
func redactDSN(dsn string) string {
	schemeEnd := strings.Index(dsn, "://")
	at := strings.LastIndex(dsn, "@")
	if schemeEnd < 0 || at < schemeEnd {
		return dsn
	}
	return dsn[:schemeEnd+3] + "***" + dsn[at:]
}

// lockRows reports whether SELECT ... FOR UPDATE is supported.
func (db *DB) lockRows() bool {
	return db.dialect == migrations.Postgres
}
