// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-restaurant-directory/internal/objectstore"
	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "no token", err: ErrNoToken, want: http.StatusUnauthorized},
		{name: "bad json", err: fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "validation", err: fmt.Errorf("%w: username is required", validators.ErrInvalidRequest), want: http.StatusBadRequest},
		{name: "wrong password", err: fmt.Errorf("%w: %w", service.ErrInvalidCredentials, service.ErrWrongPassword), want: http.StatusUnauthorized},
		{name: "revoked", err: service.ErrTokenRevoked, want: http.StatusUnauthorized},
		{name: "foreign token", err: fmt.Errorf("%w: refresh token", service.ErrTokenOwnerMismatch), want: http.StatusUnauthorized},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "restaurant missing", err: fmt.Errorf("get: %w", store.ErrRestaurantNotFound), want: http.StatusNotFound},
		{name: "constraint", err: fmt.Errorf("%w: %w", store.ErrConstraintViolation, errors.New("CHECK failed")), want: http.StatusBadRequest},
		{name: "price", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrInvalidPrice), want: http.StatusBadRequest},
		{name: "query failure", err: fmt.Errorf("%w: conn reset", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "presign failure", err: objectstore.ErrPresign, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := classifyError(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestErrorStatusMap_ChainsAgree(t *testing.T) {
	// sentinels that are wrapped together must resolve to the same code
	chains := [][]error{
		{service.ErrInvalidDataProvided, validators.ErrInvalidRequest},
		{service.ErrInvalidDataProvided, service.ErrInvalidPrice},
		{service.ErrInvalidObjectKey, validators.ErrEmptyObjectKey},
		{service.ErrInvalidCredentials, service.ErrWrongPassword},
	}

	for _, chain := range chains {
		codes := map[int]bool{}
		for _, sentinel := range chain {
			if status, ok := errorStatusMap[sentinel]; ok {
				codes[status] = true
			}
		}
		assert.LessOrEqual(t, len(codes), 1, "%v", chain)
	}
	assert.NotContains(t, errorStatusMap, service.ErrWrongPassword)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "server error hides details",
			err:        fmt.Errorf("%w: password authentication failed for user postgres", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantError:  "",
		},
		{
			name:       "credential failure names only the sentinel",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidCredentials, service.ErrWrongPassword),
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid login or password",
		},
		{
			name:       "constraint failure hides driver text",
			err:        fmt.Errorf("%w: %w", store.ErrConstraintViolation, errors.New("pq: new row violates check constraint")),
			wantStatus: http.StatusBadRequest,
			wantError:  store.ErrConstraintViolation.Error(),
		},
		{
			name:       "validation failure keeps field details",
			err:        fmt.Errorf("add menu item: %w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyDishName),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided: dish name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(rec, req, "something failed", tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			resp := decodeMessage(t, rec)
			assert.Equal(t, "something failed", resp.Msg)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantError == "" {
				assert.NotContains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}
