// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/go-resty/resty/v2"
)

const jsonContentType = "application/json"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// talking to the server at address. A zero timeout disables the per-request
// limit.
//
// Returns [ErrInvalidServerAddress] if address is empty or cannot be parsed
// as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetTokens implements [ServerAdapter].
func (h *httpServerAdapter) SetTokens(access, refresh string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.accessToken = strings.TrimSpace(access)
	h.refreshToken = strings.TrimSpace(refresh)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accessToken
}

func (h *httpServerAdapter) storedRefreshToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.refreshToken
}

// Version implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}

	return version, mapHTTPError(resp)
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(req).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return registered, fmt.Errorf("register request: %w", err)
	}

	return registered, mapHTTPError(resp)
}

// Login implements [ServerAdapter]. POST /api/auth/login. On success both
// issued tokens are stored.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var tokens models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(req).
		SetResult(&tokens).
		Post("/api/auth/login")
	if err != nil {
		return tokens, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetTokens(tokens.AccessToken, tokens.RefreshToken)
	h.logger.Debug().Str("username", tokens.Username).Msg("logged in")
	return tokens, nil
}

// Refresh implements [ServerAdapter]. POST /api/auth/refresh with the stored
// refresh token in the body.
func (h *httpServerAdapter) Refresh(ctx context.Context) (string, error) {
	refreshToken := h.storedRefreshToken()
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	var refreshed models.RefreshResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&refreshed).
		Post("/api/auth/refresh")
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetTokens(refreshed.AccessToken, refreshToken)
	return refreshed.AccessToken, nil
}

// Logout implements [ServerAdapter]. DELETE /api/auth/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(models.LogoutRequest{RefreshToken: h.storedRefreshToken()}).
		Delete("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateRestaurant implements [ServerAdapter]. POST /api/restaurant/add.
func (h *httpServerAdapter) CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (models.Restaurant, error) {
	var created models.RestaurantResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(req).
		SetResult(&created).
		Post("/api/restaurant/add")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("create restaurant request: %w", err)
	}

	return created.Restaurant, mapHTTPError(resp)
}

// ListRestaurants implements [ServerAdapter]. GET /api/restaurant/all.
func (h *httpServerAdapter) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var list models.RestaurantsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/restaurant/all")
	if err != nil {
		return nil, fmt.Errorf("list restaurants request: %w", err)
	}

	return list.Restaurants, mapHTTPError(resp)
}

// SearchRestaurants implements [ServerAdapter]. GET /api/restaurant/search.
// Empty criteria are not sent.
func (h *httpServerAdapter) SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error) {
	var list models.RestaurantsResponse

	req := h.authedRequest(ctx).SetResult(&list)
	for name, value := range map[string]string{
		"query":    search.Query,
		"cuisine":  search.Cuisine,
		"category": search.Category,
	} {
		if value != "" {
			req.SetQueryParam(name, value)
		}
	}

	resp, err := req.Get("/api/restaurant/search")
	if err != nil {
		return nil, fmt.Errorf("search restaurants request: %w", err)
	}

	return list.Restaurants, mapHTTPError(resp)
}

// GetRestaurant implements [ServerAdapter]. GET /api/restaurant/{id}.
func (h *httpServerAdapter) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	var found models.RestaurantResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(restaurantID)).
		SetResult(&found).
		Get("/api/restaurant/{id}")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get restaurant request: %w", err)
	}

	return found.Restaurant, mapHTTPError(resp)
}

// UpdateRestaurant implements [ServerAdapter]. PUT /api/restaurant/{id}.
func (h *httpServerAdapter) UpdateRestaurant(ctx context.Context, restaurantID int64, req models.UpdateRestaurantRequest) (models.Restaurant, error) {
	var updated models.RestaurantResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetPathParam("id", formatID(restaurantID)).
		SetBody(req).
		SetResult(&updated).
		Put("/api/restaurant/{id}")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("update restaurant request: %w", err)
	}

	return updated.Restaurant, mapHTTPError(resp)
}

// DeleteRestaurant implements [ServerAdapter]. DELETE /api/restaurant/{id}.
func (h *httpServerAdapter) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(restaurantID)).
		Delete("/api/restaurant/{id}")
	if err != nil {
		return fmt.Errorf("delete restaurant request: %w", err)
	}

	return mapHTTPError(resp)
}

// AddMenuItem implements [ServerAdapter].
// POST /api/restaurant-menus/add/{restaurant_id}.
func (h *httpServerAdapter) AddMenuItem(ctx context.Context, restaurantID int64, req models.MenuItemRequest) (models.MenuItem, error) {
	var added models.MenuItemResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetPathParam("restaurant_id", formatID(restaurantID)).
		SetBody(req).
		SetResult(&added).
		Post("/api/restaurant-menus/add/{restaurant_id}")
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("add menu item request: %w", err)
	}

	return added.MenuItem, mapHTTPError(resp)
}

// ListMenuItems implements [ServerAdapter].
// GET /api/restaurant-menus/get/{restaurant_id}.
func (h *httpServerAdapter) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	var menu models.MenuItemsResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("restaurant_id", formatID(restaurantID)).
		SetResult(&menu).
		Get("/api/restaurant-menus/get/{restaurant_id}")
	if err != nil {
		return nil, fmt.Errorf("list menu items request: %w", err)
	}

	return menu.MenuItems, mapHTTPError(resp)
}

// UpdateMenuItem implements [ServerAdapter].
// PUT /api/restaurant-menus/{restaurant_id}/{menu_item_id}.
func (h *httpServerAdapter) UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, req models.UpdateMenuItemRequest) (models.MenuItem, error) {
	var updated models.MenuItemResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetPathParams(map[string]string{
			"restaurant_id": formatID(restaurantID),
			"menu_item_id":  formatID(menuItemID),
		}).
		SetBody(req).
		SetResult(&updated).
		Put("/api/restaurant-menus/{restaurant_id}/{menu_item_id}")
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("update menu item request: %w", err)
	}

	return updated.MenuItem, mapHTTPError(resp)
}

// DeleteMenuItem implements [ServerAdapter].
// DELETE /api/restaurant-menus/{restaurant_id}/{menu_item_id}.
func (h *httpServerAdapter) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{
			"restaurant_id": formatID(restaurantID),
			"menu_item_id":  formatID(menuItemID),
		}).
		Delete("/api/restaurant-menus/{restaurant_id}/{menu_item_id}")
	if err != nil {
		return fmt.Errorf("delete menu item request: %w", err)
	}

	return mapHTTPError(resp)
}

// PresignUpload implements [ServerAdapter]. POST /api/images/presigned/upload.
func (h *httpServerAdapter) PresignUpload(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error) {
	return h.presign(ctx, "/api/images/presigned/upload", models.PresignUploadRequest{Files: files})
}

var presignKeyPaths = map[models.ObjectOperation]string{
	models.ObjectPut:    "/api/images/presigned/update",
	models.ObjectDelete: "/api/images/presigned/delete",
	models.ObjectGet:    "/api/images/presigned/get",
}

// PresignKeys implements [ServerAdapter]. POST /api/images/presigned/{update,delete,get}.
func (h *httpServerAdapter) PresignKeys(ctx context.Context, op models.ObjectOperation, keys []string) ([]models.PresignedURL, error) {
	path, ok := presignKeyPaths[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}
	return h.presign(ctx, path, models.PresignKeysRequest{Keys: keys})
}

func (h *httpServerAdapter) presign(ctx context.Context, path string, body any) ([]models.PresignedURL, error) {
	var urls []models.PresignedURL

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", jsonContentType).
		SetBody(body).
		SetResult(&urls).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("presign request: %w", err)
	}

	return urls, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
