// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/metrics"
	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Metrics
	uuid      *utils.UUIDGenerator

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// cookieTokens makes login and refresh also set token cookies.
	cookieTokens bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewRequestValidator(),
		metrics:        metrics,
		uuid:           utils.NewUUIDGenerator(),
		requestTimeout: cfg.Server.RequestTimeout,
		cookieTokens:   cfg.Auth.CookieTokens,
		logger:         logger,
	}
}
