// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/metrics"
	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn    func(ctx context.Context, identifier, password string) (models.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (models.Token, error)
	logoutFn   func(ctx context.Context, userID int64, tokens ...string) error
	verifyFn   func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (models.TokenPair, error) {
	return m.loginFn(ctx, identifier, password)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64, tokens ...string) error {
	return m.logoutFn(ctx, userID, tokens...)
}

// Verify accepts the token "valid" as user 7 unless verifyFn is set.
func (m *mockAuthService) Verify(ctx context.Context, token string) (models.Token, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, token)
	}
	if token == "valid" {
		return models.Token{UserID: 7}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock: service.RestaurantService
// ─────────────────────────────────────────────

type mockRestaurantService struct {
	createFn func(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	listFn   func(ctx context.Context) ([]models.Restaurant, error)
	getFn    func(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	updateFn func(ctx context.Context, update models.RestaurantUpdate) (models.Restaurant, error)
	deleteFn func(ctx context.Context, restaurantID int64) error
	searchFn func(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error)
}

func (m *mockRestaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	return m.createFn(ctx, restaurant)
}

func (m *mockRestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return m.listFn(ctx)
}

func (m *mockRestaurantService) GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	return m.getFn(ctx, restaurantID)
}

func (m *mockRestaurantService) UpdateRestaurant(ctx context.Context, update models.RestaurantUpdate) (models.Restaurant, error) {
	return m.updateFn(ctx, update)
}

func (m *mockRestaurantService) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	return m.deleteFn(ctx, restaurantID)
}

func (m *mockRestaurantService) SearchRestaurants(ctx context.Context, search models.RestaurantSearch) ([]models.Restaurant, error) {
	return m.searchFn(ctx, search)
}

// ─────────────────────────────────────────────
// Mock: service.MenuService
// ─────────────────────────────────────────────

type mockMenuService struct {
	addFn    func(ctx context.Context, restaurantID int64, draft models.MenuItemDraft) (models.MenuItem, error)
	listFn   func(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	updateFn func(ctx context.Context, update models.MenuItemUpdate) (models.MenuItem, error)
	deleteFn func(ctx context.Context, restaurantID, menuItemID int64) error
}

func (m *mockMenuService) AddMenuItem(ctx context.Context, restaurantID int64, draft models.MenuItemDraft) (models.MenuItem, error) {
	return m.addFn(ctx, restaurantID, draft)
}

func (m *mockMenuService) ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	return m.listFn(ctx, restaurantID)
}

func (m *mockMenuService) UpdateMenuItem(ctx context.Context, update models.MenuItemUpdate) (models.MenuItem, error) {
	return m.updateFn(ctx, update)
}

func (m *mockMenuService) DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error {
	return m.deleteFn(ctx, restaurantID, menuItemID)
}

// ─────────────────────────────────────────────
// Mock: service.ImageService
// ─────────────────────────────────────────────

type mockImageService struct {
	uploadFn func(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error)
	keysFn   func(op models.ObjectOperation, keys []string) ([]models.PresignedURL, error)
}

func (m *mockImageService) PresignUpload(ctx context.Context, files []models.UploadFile) ([]models.PresignedURL, error) {
	return m.uploadFn(ctx, files)
}

func (m *mockImageService) PresignUpdate(_ context.Context, keys []string) ([]models.PresignedURL, error) {
	return m.keysFn(models.ObjectPut, keys)
}

func (m *mockImageService) PresignDelete(_ context.Context, keys []string) ([]models.PresignedURL, error) {
	return m.keysFn(models.ObjectDelete, keys)
}

func (m *mockImageService) PresignGet(_ context.Context, keys []string) ([]models.PresignedURL, error) {
	return m.keysFn(models.ObjectGet, keys)
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) models.VersionResponse {
	return models.VersionResponse{Version: m.version}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around svcs, filling in an AppInfoService
// and an AuthService that accepts the token "valid".
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	return NewHandler(svcs, config.StructuredConfig{}, metrics.New(), logger.Nop())
}

// serve sends a request through the full router. A non-empty body is sent
// as JSON; token, when set, is sent as a bearer token.
func serve(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeMessage decodes a {msg, error} response body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) models.MessageResponse {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func ptr[T any](v T) *T {
	return &v
}
