// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the transport and
// service layers.
//
// Two implementations of [Validator] are shipped:
//   - [RequestValidator] checks decoded request DTOs against their
//     `validate` struct tags (go-playground/validator).
//   - [CatalogValidator] enforces the business rules of restaurants, menu
//     items, searches and object keys.
//
// Both accept optional field names that restrict validation to a subset of
// the value.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
