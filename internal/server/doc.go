// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP server of the restaurant directory
// together with its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGTERM, SIGINT
// or SIGQUIT in-flight requests are drained within the configured shutdown
// timeout and the workers are stopped.
package server
