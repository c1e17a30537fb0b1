// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRequest = errors.New("invalid request")

	ErrEmptyRestaurantName = errors.New("restaurant name is required")
	ErrEmptyDishName       = errors.New("dish name is required")
	ErrEmptyCuisine        = errors.New("cuisine is required")
	ErrEmptyCategory       = errors.New("menu category is required")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrRatingOutOfRange    = errors.New("rating must be between 0 and 5")
	ErrEmptySearch         = errors.New("at least one search criterion is required")
	ErrEmptyObjectKey      = errors.New("object key is required")
	ErrUnsafeObjectKey     = errors.New("object key must be relative and must not contain '..'")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
)
