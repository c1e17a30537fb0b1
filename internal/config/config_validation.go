// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. It runs after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.AccessTokenDuration <= 0 || cfg.Auth.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAuthConfigs, minBcryptCost, maxBcryptCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Objects.Bucket == "" {
		return fmt.Errorf("%w: object storage bucket is required", ErrInvalidStorageConfigs)
	}
	if (cfg.Storage.Objects.AccessKeyID == "") != (cfg.Storage.Objects.SecretAccessKey == "") {
		return fmt.Errorf("%w: access key id and secret must be set together", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Objects.PresignTTL <= 0 {
		return fmt.Errorf("%w: presign ttl must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.RevocationSweepInterval <= 0 {
		return fmt.Errorf("%w: revocation sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
