// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrWrongTokenType          = errors.New("wrong token type")
	ErrTokenOwnerMismatch      = errors.New("token belongs to another user")

	ErrInvalidPrice     = errors.New("price must be a non-negative integer")
	ErrInvalidObjectKey = errors.New("invalid object key")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
