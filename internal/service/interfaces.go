// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-directory/models"
)

// AuthService owns the account and token lifecycle: a token is issued,
// verified any number of times and finally revoked. Revocation is one-way.
type AuthService interface {
	// Register creates an account from user.Username, user.Email and the
	// plaintext user.Password.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates by username or email and issues a token pair.
	Login(ctx context.Context, identifier, password string) (models.TokenPair, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (models.Token, error)

	// Logout revokes tokens, which may already be expired, on behalf of
	// userID. Nothing is revoked unless every token belongs to userID.
	// Revoking twice succeeds.
	Logout(ctx context.Context, userID int64, tokens ...string) error

	// Verify validates an access token, checks it against the revocation
	// ledger and confirms its subject still exists.
	Verify(ctx context.Context, token string) (models.Token, error)
}

// RestaurantService manages restaurants.
type RestaurantService interface {
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, update models.RestaurantUpdate) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID int64) error
	SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error)
}

// MenuService manages the menu items of restaurants.
type MenuService interface {
	AddMenuItem(ctx context.Context, restaurantID int64, draft models.MenuItemDraft) (models.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, update models.MenuItemUpdate) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error
}

// ImageService issues presigned object-storage URLs for restaurant and
// menu images.
type ImageService interface {
	PresignUpload(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error)
	PresignUpdate(ctx context.Context, keys []string) ([]models.PresignedURL, error)
	PresignDelete(ctx context.Context, keys []string) ([]models.PresignedURL, error)
	PresignGet(ctx context.Context, keys []string) ([]models.PresignedURL, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
