// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoToken is returned when a request carries neither an
	// "Authorization" header nor the corresponding token cookie.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned when an id in the URL path is not a
	// positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrUnsupportedMediaType is returned when a request body is not JSON.
	ErrUnsupportedMediaType = errors.New("request body must be application/json")
)
