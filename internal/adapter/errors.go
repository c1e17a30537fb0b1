// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")

	ErrNoRefreshToken       = errors.New("no refresh token stored")
	ErrUnsupportedOperation = errors.New("unsupported object operation")
	ErrInvalidServerAddress = errors.New("invalid server address")
)
