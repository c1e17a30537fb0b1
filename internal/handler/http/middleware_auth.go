// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/rs/zerolog"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The access token is read from the "Authorization: Bearer <token>" header,
// falling back to the access_token cookie. It is verified via
// [service.AuthService.Verify], which also consults the revocation ledger.
// On success the user id is stored in the request context with
// [utils.WithUserID] and added to the request-scoped logger.
//
// Requests without a valid, unrevoked access token are rejected with
// HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r, accessTokenCookie)
		if err != nil {
			writeError(w, r, "unauthorized", err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, "unauthorized", err)
			return
		}

		l := logger.FromContext(ctx).Child(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = l.WithContext(ctx)

		ctx = utils.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the bearer token of the "Authorization" header or,
// when the header is absent, the value of the named cookie.
func tokenFromRequest(r *http.Request, cookieName string) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return tokenString, nil
	}

	if cookie, err := r.Cookie(cookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return cookie.Value, nil
	}

	return "", ErrNoToken
}
