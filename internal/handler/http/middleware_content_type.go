// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
)

// requireJSON rejects requests whose body is not declared as
// application/json with 415 and a JSON message. Bodiless requests pass.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
		if mediaType != jsonContentType {
			writeError(w, r, "unsupported content type",
				fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType))
			return
		}

		next.ServeHTTP(w, r)
	})
}
