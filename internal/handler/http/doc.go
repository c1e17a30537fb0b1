// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the restaurant directory.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, metrics
// and response compression are handled in this package before requests are
// delegated to the service layer. Every error response has the shape
// {"msg": ..., "error": ...}; the error field is omitted for 5xx responses.
package http
