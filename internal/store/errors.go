// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a new user collides with an
	// existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a new user collides with an
	// existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRestaurantAlreadyExists is returned when a restaurant name is taken.
	ErrRestaurantAlreadyExists = errors.New("restaurant already exists")

	// ErrRestaurantNotFound is returned when the referenced restaurant does
	// not exist.
	ErrRestaurantNotFound = errors.New("restaurant was not found")

	// ErrMenuItemNotFound is returned when the menu item does not exist or
	// does not belong to the given restaurant.
	ErrMenuItemNotFound = errors.New("menu item was not found")

	// ErrConstraintViolation is returned when a CHECK or NOT NULL constraint
	// rejects a write, e.g. a negative price reaching the database.
	ErrConstraintViolation = errors.New("data violates a database constraint")

	// ErrUnsupportedDSN is returned by [NewDB] for a DSN whose scheme maps to
	// no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
