// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultTokenIssuer             = "restaurant-directory"
	DefaultAccessTokenDuration     = time.Hour
	DefaultRefreshTokenDuration    = 7 * 24 * time.Hour
	DefaultBcryptCost              = 10
	DefaultObjectsRegion           = "us-east-1"
	DefaultPresignTTL              = 15 * time.Minute
	DefaultHTTPAddress             = "localhost:8080"
	DefaultRequestTimeout          = 30 * time.Second
	DefaultShutdownTimeout         = 10 * time.Second
	DefaultRevocationSweepInterval = time.Hour
	DefaultVersion                 = "dev"
)

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Version, DefaultVersion)

	setDefault(&cfg.Auth.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.Auth.AccessTokenDuration, DefaultAccessTokenDuration)
	setDefault(&cfg.Auth.RefreshTokenDuration, DefaultRefreshTokenDuration)
	setDefault(&cfg.Auth.BcryptCost, DefaultBcryptCost)

	setDefault(&cfg.Storage.Objects.Region, DefaultObjectsRegion)
	setDefault(&cfg.Storage.Objects.PresignTTL, DefaultPresignTTL)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)

	setDefault(&cfg.Workers.RevocationSweepInterval, DefaultRevocationSweepInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
