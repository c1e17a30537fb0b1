// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a list of KEY=VALUE pairs in the format of
// os.Environ. Fields are mapped through the `env` and `envPrefix` tags of
// [StructuredConfig]; variables that are not set leave their fields zero so
// that later sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig, environ []string) error {
	opts := env.Options{Environment: environMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func environMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok {
			vars[key] = value
		}
	}
	return vars
}
