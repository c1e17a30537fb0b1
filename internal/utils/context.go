// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds helpers shared by the server packages: request context
// values, password peppering, JSON responses, the resty client factory, JWT
// issuing and parsing, and UUID generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return "restaurant-directory context key " + string(c)
}

var userIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the id of the authenticated user.
// The auth middleware calls it once a token has been verified.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext returns the user id stored by [WithUserID]. ok is false
// for requests that did not pass the auth middleware.
//
//	userID, ok := utils.UserIDFromContext(ctx)
func UserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDCtxKey).(int64)
	return userID, ok
}
