// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

// LoginRequest is the body of POST /api/auth/login. The account is
// identified by either Username or Email.
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

// Identifier returns the login identifier the client supplied, preferring
// the username.
func (r LoginRequest) Identifier() string {
	if username := strings.TrimSpace(r.Username); username != "" {
		return username
	}
	return strings.TrimSpace(r.Email)
}

// RefreshRequest is the optional body of POST /api/auth/refresh. When it is
// absent the refresh token is read from the Authorization header or cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest is the optional body of DELETE /api/auth/logout. A supplied
// refresh token is revoked along with the access token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateRestaurantRequest is the body of POST /api/restaurant/add.
type CreateRestaurantRequest struct {
	Name        string  `json:"restaurant_name" validate:"required,max=255"`
	ImageKey    *string `json:"image_key" validate:"omitempty,max=1024"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateRestaurantRequest is the body of PUT /api/restaurant/{id}.
// Absent fields are left unchanged.
type UpdateRestaurantRequest struct {
	Name        *string `json:"restaurant_name" validate:"omitempty,max=255"`
	ImageKey    *string `json:"image_key" validate:"omitempty,max=1024"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// MenuItemRequest is the body of POST /api/restaurant-menus/add/{restaurant_id}.
type MenuItemRequest struct {
	DishName  string     `json:"dish_name" validate:"required,max=255"`
	Cuisine   string     `json:"cuisine" validate:"required,max=100"`
	Category  string     `json:"menu_category" validate:"required,max=100"`
	Price     PriceValue `json:"price" validate:"required"`
	Rating    *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ImageKeys []string   `json:"image_keys" validate:"omitempty,dive,required,max=1024"`
}

// UpdateMenuItemRequest is the body of
// PUT /api/restaurant-menus/{restaurant_id}/{menu_item_id}.
type UpdateMenuItemRequest struct {
	DishName  *string     `json:"dish_name" validate:"omitempty,max=255"`
	Cuisine   *string     `json:"cuisine" validate:"omitempty,max=100"`
	Category  *string     `json:"menu_category" validate:"omitempty,max=100"`
	Price     *PriceValue `json:"price"`
	Rating    *float64    `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ImageKeys *[]string   `json:"image_keys" validate:"omitempty,dive,required,max=1024"`
}

// PresignUploadRequest is the body of POST /api/images/presigned/upload.
type PresignUploadRequest struct {
	Files UploadFiles `json:"files" validate:"required,min=1"`
}

// PresignKeysRequest is the body of the update, delete and get presign
// endpoints.
type PresignKeysRequest struct {
	Keys KeyList `json:"keys" validate:"required,min=1"`
}
