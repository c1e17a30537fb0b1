// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Duplicates yield [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin looks a user up by username or email.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// FindUserByID looks a user up by id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RevokedTokenRepository is the revocation ledger: the set of token ids
// that must no longer be accepted.
type RevokedTokenRepository interface {
	// Revoke records the token. Revoking an already revoked token is a no-op.
	Revoke(ctx context.Context, token models.RevokedToken) error
	// IsRevoked reports whether jti is in the ledger.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// PurgeExpired deletes entries whose token expired before now and
	// returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// RestaurantMutation edits a restaurant loaded inside an update transaction.
// Returning an error aborts the update and rolls the transaction back.
type RestaurantMutation func(restaurant *models.Restaurant) error

// RestaurantRepository persists restaurants.
type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// UpdateRestaurant loads the restaurant, applies mutate and writes the
	// result back, all in one transaction.
	UpdateRestaurant(ctx context.Context, restaurantID int64, mutate RestaurantMutation) (models.Restaurant, error)
	// DeleteRestaurant removes the restaurant and all of its menu items.
	DeleteRestaurant(ctx context.Context, restaurantID int64) error
	SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error)
}

// MenuItemMutation edits a menu item loaded inside an update transaction.
type MenuItemMutation func(item *models.MenuItem) error

// MenuItemRepository persists menu items. Every item belongs to exactly one
// restaurant; operations on a missing restaurant yield [ErrRestaurantNotFound].
type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, mutate MenuItemMutation) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error
}
