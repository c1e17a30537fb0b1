// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		cookie     string
		verifyErr  error
		wantStatus int
		wantError  string
		wantToken  string
	}{
		{name: "bearer header", header: "Bearer abc", wantStatus: http.StatusOK, wantToken: "abc"},
		{name: "cookie fallback", cookie: "from-cookie", wantStatus: http.StatusOK, wantToken: "from-cookie"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "from-cookie", wantStatus: http.StatusOK, wantToken: "abc"},
		{name: "no token", wantStatus: http.StatusUnauthorized, wantError: ErrNoToken.Error()},
		{name: "not a bearer header", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantError: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired token", header: "Bearer abc", verifyErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantError: service.ErrTokenIsExpiredOrInvalid.Error()},
		{name: "revoked token", header: "Bearer abc", verifyErr: service.ErrTokenRevoked, wantStatus: http.StatusUnauthorized, wantError: service.ErrTokenRevoked.Error()},
		{name: "refresh token used", header: "Bearer abc", verifyErr: service.ErrWrongTokenType, wantStatus: http.StatusUnauthorized, wantError: service.ErrWrongTokenType.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verified string
			h := newTestHandler(t, &service.Services{
				AuthService: &mockAuthService{
					verifyFn: func(_ context.Context, token string) (models.Token, error) {
						verified = token
						if tt.verifyErr != nil {
							return models.Token{}, tt.verifyErr
						}
						return models.Token{UserID: 42}, nil
					},
				},
			})

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantToken, verified)
				assert.Equal(t, int64(42), gotUserID)
				return
			}
			assert.Equal(t, tt.wantError, decodeMessage(t, rec).Error)
		})
	}
}

func TestAuthMiddleware_VerifyNotCalledWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			verifyFn: func(context.Context, string) (models.Token, error) {
				t.Fatal("verify must not be called")
				return models.Token{}, nil
			},
		},
	})

	rec := httptest.NewRecorder()
	h.auth(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
