// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. It tells
// repositories which integrity constraint, if any, a failed statement broke.
type ErrorClassification int

const (
	// Unclassified is any error that is not a known constraint violation.
	Unclassified ErrorClassification = iota
	// UniqueViolation is a duplicate key in a unique index or primary key.
	UniqueViolation
	// ForeignKeyViolation is a reference to a missing parent row.
	ForeignKeyViolation
	// CheckViolation is a failed CHECK constraint.
	CheckViolation
	// NotNullViolation is a NULL written to a NOT NULL column.
	NotNullViolation
)

// ErrorClassificator maps dialect-specific driver errors to
// [ErrorClassification] values.
type ErrorClassificator interface {
	// Classify reports which constraint class err violates.
	Classify(err error) ErrorClassification
	// Constraint returns the name of the violated constraint or column, or ""
	// when the driver does not report one.
	Constraint(err error) string
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return Unclassified
}

// Constraint implements [ErrorClassificator]. It returns the constraint name
// reported by the server, e.g. "users_email_key".
func (c *PostgresErrorClassifier) Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result codes
// of SQLite.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		return CheckViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}

	return Unclassified
}

// Constraint implements [ErrorClassificator]. SQLite names the offending
// column in the message ("UNIQUE constraint failed: users.email"), which is
// returned as "users.email".
func (c *SQLiteErrorClassifier) Constraint(err error) string {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}

	_, detail, found := strings.Cut(sqliteErr.Error(), "constraint failed: ")
	if !found {
		return ""
	}
	return detail
}
