// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every error response and of responses
// that carry no payload. Error is set only for client errors.
type MessageResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
}

// RefreshResponse carries a newly issued access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// RestaurantResponse wraps a single restaurant.
type RestaurantResponse struct {
	Msg        string     `json:"msg"`
	Restaurant Restaurant `json:"restaurant"`
}

// RestaurantsResponse wraps a list of restaurants together with its length.
type RestaurantsResponse struct {
	Msg         string       `json:"msg"`
	Restaurants []Restaurant `json:"restaurants"`
	Count       int          `json:"count"`
}

// MenuItemResponse wraps a single menu item.
type MenuItemResponse struct {
	Msg      string   `json:"msg"`
	MenuItem MenuItem `json:"menu_item"`
}

// MenuItemsResponse wraps a restaurant's menu together with its length.
type MenuItemsResponse struct {
	Msg       string     `json:"msg"`
	MenuItems []MenuItem `json:"menu_items"`
	Count     int        `json:"count"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
