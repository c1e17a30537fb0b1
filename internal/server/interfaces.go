// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs the directory API together with its background workers.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or a
	// component fails. It returns the first failure, nil after a clean stop.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
