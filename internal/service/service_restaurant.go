// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

type restaurantService struct {
	restaurantRepository store.RestaurantRepository
	validator            validators.Validator

	logger *logger.Logger
}

// NewRestaurantService constructs a RestaurantService backed by repository.
func NewRestaurantService(repository store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepository: repository,
		validator:            validators.NewCatalogValidator(),
		logger:               logger,
	}
}

// CreateRestaurant validates and stores a new restaurant. The caller taken
// from the context, if any, is recorded as its creator.
func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	restaurant.Name = strings.TrimSpace(restaurant.Name)
	restaurant.ImageKey = normalizeOptional(restaurant.ImageKey)
	restaurant.Description = normalizeOptional(restaurant.Description)

	if err := s.validator.Validate(ctx, restaurant); err != nil {
		log.Error().Err(err).Str("name", restaurant.Name).Msg("invalid restaurant provided")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if userID, ok := utils.UserIDFromContext(ctx); ok {
		restaurant.CreatedBy = &userID
	}

	created, err := s.restaurantRepository.CreateRestaurant(ctx, restaurant)
	if err != nil {
		log.Err(err).Str("name", restaurant.Name).Msg("restaurant creation failed")
		return models.Restaurant{}, fmt.Errorf("restaurant creation failed: %w", err)
	}

	log.Info().Int64("restaurant_id", created.RestaurantID).Msg("restaurant created")
	return created, nil
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.ListRestaurants(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing restaurants failed")
		return nil, fmt.Errorf("listing restaurants failed: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	restaurant, err := s.restaurantRepository.GetRestaurant(ctx, restaurantID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("restaurant_id", restaurantID).Msg("getting restaurant failed")
		return models.Restaurant{}, fmt.Errorf("getting restaurant failed: %w", err)
	}
	return restaurant, nil
}

// UpdateRestaurant applies the non-nil fields of update inside one
// transaction. An empty image key or description clears the column.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, update models.RestaurantUpdate) (models.Restaurant, error) {
	log := logger.FromContext(ctx).With().Int64("restaurant_id", update.RestaurantID).Logger()

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Msg("invalid restaurant update provided")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.restaurantRepository.UpdateRestaurant(ctx, update.RestaurantID, func(restaurant *models.Restaurant) error {
		if update.Name != nil {
			restaurant.Name = strings.TrimSpace(*update.Name)
		}
		if update.ImageKey != nil {
			restaurant.ImageKey = normalizeOptional(update.ImageKey)
		}
		if update.Description != nil {
			restaurant.Description = normalizeOptional(update.Description)
		}

		if err := s.validator.Validate(ctx, restaurant); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Msg("restaurant update failed")
		return models.Restaurant{}, fmt.Errorf("restaurant update failed: %w", err)
	}

	return updated, nil
}

// DeleteRestaurant removes the restaurant together with its menu.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	if err := s.restaurantRepository.DeleteRestaurant(ctx, restaurantID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("restaurant_id", restaurantID).Msg("restaurant deletion failed")
		return fmt.Errorf("restaurant deletion failed: %w", err)
	}
	return nil
}

// SearchRestaurants finds restaurants by name or by what they serve.
func (s *restaurantService) SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	search = models.RestaurantSearch{
		Query:    strings.TrimSpace(search.Query),
		Cuisine:  strings.TrimSpace(search.Cuisine),
		Category: strings.TrimSpace(search.Category),
	}

	if err := s.validator.Validate(ctx, search); err != nil {
		log.Error().Err(err).Msg("invalid search provided")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	restaurants, err := s.restaurantRepository.SearchRestaurants(ctx, search)
	if err != nil {
		log.Err(err).Any("search", search).Msg("restaurant search failed")
		return nil, fmt.Errorf("restaurant search failed: %w", err)
	}

	return restaurants, nil
}

// normalizeOptional trims s and maps blank values to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
