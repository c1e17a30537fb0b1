// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/models"
)

// Field names accepted by [CatalogValidator.Validate].
const (
	FieldRestaurantName = "restaurant_name"

	FieldDishName  = "dish_name"
	FieldCuisine   = "cuisine"
	FieldCategory  = "menu_category"
	FieldPrice     = "price"
	FieldRating    = "rating"
	FieldImageKeys = "image_keys"

	FieldImageKey = "image_key"
)

// CatalogValidator implements [Validator] for the catalog models:
// [models.Restaurant], [models.MenuItem], [models.RestaurantSearch],
// [models.RestaurantUpdate] and object keys passed as [models.KeyList].
type CatalogValidator struct{}

// NewCatalogValidator constructs a CatalogValidator.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Without fields every rule of the type is checked.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Restaurant:
		return v.validateRestaurant(value, fields...)
	case *models.Restaurant:
		return v.validateRestaurant(*value, fields...)
	case models.RestaurantUpdate:
		return v.validateRestaurantUpdate(value)
	case *models.RestaurantUpdate:
		return v.validateRestaurantUpdate(*value)
	case models.MenuItem:
		return v.validateMenuItem(value, fields...)
	case *models.MenuItem:
		return v.validateMenuItem(*value, fields...)
	case models.RestaurantSearch:
		return v.validateSearch(value)
	case *models.RestaurantSearch:
		return v.validateSearch(*value)
	case models.KeyList:
		return v.validateKeys(value)
	case string:
		return ValidateObjectKey(value)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *CatalogValidator) validateRestaurant(restaurant models.Restaurant, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRestaurantName, FieldImageKey}
	}

	for _, f := range fields {
		switch f {
		case FieldRestaurantName:
			if strings.TrimSpace(restaurant.Name) == "" {
				return ErrEmptyRestaurantName
			}
		case FieldImageKey:
			if restaurant.ImageKey != nil && *restaurant.ImageKey != "" {
				if err := ValidateObjectKey(*restaurant.ImageKey); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateRestaurantUpdate(update models.RestaurantUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

func (v *CatalogValidator) validateMenuItem(item models.MenuItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDishName, FieldCuisine, FieldCategory, FieldPrice, FieldRating, FieldImageKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldDishName:
			if strings.TrimSpace(item.DishName) == "" {
				return ErrEmptyDishName
			}
		case FieldCuisine:
			if strings.TrimSpace(item.Cuisine) == "" {
				return ErrEmptyCuisine
			}
		case FieldCategory:
			if strings.TrimSpace(item.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldPrice:
			if item.Price < 0 {
				return ErrNegativePrice
			}
		case FieldRating:
			if item.Rating != nil && (*item.Rating < models.MinRating || *item.Rating > models.MaxRating) {
				return ErrRatingOutOfRange
			}
		case FieldImageKeys:
			for i, key := range item.ImageKeys {
				if err := ValidateObjectKey(key); err != nil {
					return fmt.Errorf("image key at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateSearch(search models.RestaurantSearch) error {
	if strings.TrimSpace(search.Query) == "" &&
		strings.TrimSpace(search.Cuisine) == "" &&
		strings.TrimSpace(search.Category) == "" {
		return ErrEmptySearch
	}
	return nil
}

func (v *CatalogValidator) validateKeys(keys models.KeyList) error {
	if len(keys) == 0 {
		return ErrEmptyObjectKey
	}
	for i, key := range keys {
		if err := ValidateObjectKey(key); err != nil {
			return fmt.Errorf("key at index %d: %w", i, err)
		}
	}
	return nil
}

// ValidateObjectKey rejects keys that are blank, absolute or that contain a
// ".." path segment.
func ValidateObjectKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyObjectKey
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return ErrUnsafeObjectKey
	}
	return nil
}
