// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Restaurant is a directory entry. Its name is unique across the directory
// and it owns zero or more [MenuItem] records.
type Restaurant struct {
	// RestaurantID is the surrogate key of the restaurant.
	RestaurantID int64 `json:"id"`

	// Name is the unique display name.
	Name string `json:"restaurant_name"`

	// ImageKey is the optional object-storage key of the cover image.
	ImageKey *string `json:"image_key"`

	// Description is an optional short description.
	Description *string `json:"description"`

	// CreatedBy references the user that added the restaurant, if known.
	CreatedBy *int64 `json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantUpdate describes a partial update of a restaurant.
// Only non-nil fields are applied.
type RestaurantUpdate struct {
	RestaurantID int64
	Name         *string
	ImageKey     *string
	Description  *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u RestaurantUpdate) IsEmpty() bool {
	return u.Name == nil && u.ImageKey == nil && u.Description == nil
}

// RestaurantSearch holds the criteria of a restaurant search. Query is matched
// case-insensitively against the restaurant name and its menu items; Cuisine
// and Category narrow the result to restaurants serving matching menu items.
type RestaurantSearch struct {
	Query    string
	Cuisine  string
	Category string
}

// IsEmpty reports whether no criterion was given.
func (s RestaurantSearch) IsEmpty() bool {
	return s.Query == "" && s.Cuisine == "" && s.Category == ""
}
