// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

type menuService struct {
	menuItemRepository store.MenuItemRepository
	validator          validators.Validator

	logger *logger.Logger
}

// NewMenuService constructs a MenuService backed by repository.
func NewMenuService(repository store.MenuItemRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuItemRepository: repository,
		validator:          validators.NewCatalogValidator(),
		logger:             logger,
	}
}

// AddMenuItem validates draft and adds it to the menu of restaurantID.
// The price may arrive as a JSON number or a numeric string; anything that
// is not a non-negative integer yields ErrInvalidPrice.
func (s *menuService) AddMenuItem(ctx context.Context, restaurantID int64, draft models.MenuItemDraft) (models.MenuItem, error) {
	log := logger.FromContext(ctx).With().Int64("restaurant_id", restaurantID).Logger()

	price, err := parsePrice(draft.Price)
	if err != nil {
		log.Error().Err(err).Msg("invalid price provided")
		return models.MenuItem{}, err
	}

	item := models.MenuItem{
		RestaurantID: restaurantID,
		DishName:     strings.TrimSpace(draft.DishName),
		Cuisine:      strings.TrimSpace(draft.Cuisine),
		Category:     strings.TrimSpace(draft.Category),
		Price:        price,
		Rating:       draft.Rating,
		ImageKeys:    trimKeys(draft.ImageKeys),
	}

	if err = s.validator.Validate(ctx, item); err != nil {
		log.Error().Err(err).Msg("invalid menu item provided")
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.menuItemRepository.CreateMenuItem(ctx, item)
	if err != nil {
		log.Err(err).Msg("menu item creation failed")
		return models.MenuItem{}, fmt.Errorf("menu item creation failed: %w", err)
	}

	log.Info().Int64("menu_item_id", created.MenuItemID).Msg("menu item created")
	return created, nil
}

// ListMenuItems returns the menu of restaurantID. An existing restaurant
// without items yields an empty list.
func (s *menuService) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	items, err := s.menuItemRepository.ListMenuItems(ctx, restaurantID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("restaurant_id", restaurantID).Msg("listing menu items failed")
		return nil, fmt.Errorf("listing menu items failed: %w", err)
	}
	return items, nil
}

// UpdateMenuItem applies the non-nil fields of update to an item of the
// given restaurant.
func (s *menuService) UpdateMenuItem(ctx context.Context, update models.MenuItemUpdate) (models.MenuItem, error) {
	log := logger.FromContext(ctx).With().
		Int64("restaurant_id", update.RestaurantID).
		Int64("menu_item_id", update.MenuItemID).
		Logger()

	fields := make([]string, 0, 6)
	var price int64
	if update.Price != nil {
		p, err := parsePrice(*update.Price)
		if err != nil {
			log.Error().Err(err).Msg("invalid price provided")
			return models.MenuItem{}, err
		}
		price = p
		fields = append(fields, validators.FieldPrice)
	}
	if update.DishName != nil {
		fields = append(fields, validators.FieldDishName)
	}
	if update.Cuisine != nil {
		fields = append(fields, validators.FieldCuisine)
	}
	if update.Category != nil {
		fields = append(fields, validators.FieldCategory)
	}
	if update.Rating != nil {
		fields = append(fields, validators.FieldRating)
	}
	if update.ImageKeys != nil {
		fields = append(fields, validators.FieldImageKeys)
	}

	if len(fields) == 0 {
		log.Error().Msg("empty menu item update provided")
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate)
	}

	updated, err := s.menuItemRepository.UpdateMenuItem(ctx, update.RestaurantID, update.MenuItemID, func(item *models.MenuItem) error {
		if update.DishName != nil {
			item.DishName = strings.TrimSpace(*update.DishName)
		}
		if update.Cuisine != nil {
			item.Cuisine = strings.TrimSpace(*update.Cuisine)
		}
		if update.Category != nil {
			item.Category = strings.TrimSpace(*update.Category)
		}
		if update.Price != nil {
			item.Price = price
		}
		if update.Rating != nil {
			item.Rating = update.Rating
		}
		if update.ImageKeys != nil {
			item.ImageKeys = trimKeys(*update.ImageKeys)
		}

		if err := s.validator.Validate(ctx, item, fields...); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Msg("menu item update failed")
		return models.MenuItem{}, fmt.Errorf("menu item update failed: %w", err)
	}

	return updated, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	if err := s.menuItemRepository.DeleteMenuItem(ctx, restaurantID, menuItemID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("restaurant_id", restaurantID).
			Int64("menu_item_id", menuItemID).
			Msg("menu item deletion failed")
		return fmt.Errorf("menu item deletion failed: %w", err)
	}
	return nil
}

func parsePrice(p models.PriceValue) (int64, error) {
	price, err := p.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrice, price)
	}
	return price, nil
}

func trimKeys(keys []string) models.ImageKeys {
	trimmed := make(models.ImageKeys, 0, len(keys))
	for _, key := range keys {
		trimmed = append(trimmed, strings.TrimSpace(key))
	}
	return trimmed
}
