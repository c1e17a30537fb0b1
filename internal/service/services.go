// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/objectstore"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

type Services struct {
	AuthService       AuthService
	RestaurantService RestaurantService
	MenuService       MenuService
	ImageService      ImageService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, presigner objectstore.Presigner, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.RevokedTokenRepository, cfg.Auth, logger),
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, logger),
		MenuService:       NewMenuService(storages.MenuItemRepository, logger),
		ImageService:      NewImageService(presigner, cfg.Storage.Objects, logger),
		AppInfoService:    appInfoService,
	}, nil
}
