// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client of the restaurant directory REST
// API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]). Error responses
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-restaurant-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the restaurant directory server.
// Implementations keep the tokens of the last login and attach the access
// token to every protected request.
type ServerAdapter interface {
	// SetTokens stores the access and refresh tokens used by subsequent
	// requests. Login calls it automatically.
	SetTokens(access, refresh string)

	// Token returns the current access token, or "" before a login.
	Token() string

	// Version fetches the server version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Register creates a user account.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates by username or email and stores the issued tokens.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Refresh exchanges the stored refresh token for a new access token and
	// stores it.
	Refresh(ctx context.Context) (string, error)

	// Logout revokes the stored access and refresh tokens on the server.
	// The tokens are kept locally so that their rejection can be observed.
	Logout(ctx context.Context) error

	CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID int64, req models.UpdateRestaurantRequest) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID int64) error

	AddMenuItem(ctx context.Context, restaurantID int64, req models.MenuItemRequest) (models.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, req models.UpdateMenuItemRequest) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error

	// PresignUpload requests upload URLs; files with an empty name get a
	// server-generated key.
	PresignUpload(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error)

	// PresignKeys requests URLs granting op on existing keys.
	PresignKeys(ctx context.Context, op models.ObjectOperation, keys []string) ([]models.PresignedURL, error)
}
