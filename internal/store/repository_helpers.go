// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// wrapQueryError marks err as a query failure unless it already carries a
// transaction error.
func wrapQueryError(err error) error {
	if errors.Is(err, ErrBeginningTransaction) || errors.Is(err, ErrCommitingTransaction) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// timestamp scans a TIMESTAMP column into t. SQLite hands back plain text
// when it cannot resolve the declared column type, e.g. for RETURNING.
type timestamp struct {
	t *time.Time
}

func scanTime(t *time.Time) timestamp {
	return timestamp{t: t}
}

// Scan implements [sql.Scanner].
func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case nil:
		*ts.t = time.Time{}
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
