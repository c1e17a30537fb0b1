// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{name: "json", contentType: "application/json", body: `{}`, wantStatus: http.StatusOK},
		{name: "json with charset", contentType: "Application/JSON; charset=utf-8", body: `{}`, wantStatus: http.StatusOK},
		{name: "no body", wantStatus: http.StatusOK},
		{name: "plain text", contentType: "text/plain", body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
		{name: "form", contentType: "application/x-www-form-urlencoded", body: "name=x", wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing header", body: `{}`, wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			requireJSON(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnsupportedMediaType {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				resp := decodeMessage(t, rec)
				assert.Equal(t, "unsupported content type", resp.Msg)
				assert.Equal(t, ErrUnsupportedMediaType.Error(), resp.Error)
			}
		})
	}
}
