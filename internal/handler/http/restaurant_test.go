// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFn   func(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: `{"restaurant_name":"Noodle House","description":"hand-pulled"}`,
			createFn: func(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
				userID, ok := utils.UserIDFromContext(ctx)
				if !ok || userID != 7 {
					return models.Restaurant{}, fmt.Errorf("user id missing from context")
				}
				restaurant.RestaurantID = 3
				return restaurant, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "name missing",
			body:       `{"description":"hand-pulled"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request: restaurant_name is required",
		},
		{
			name: "duplicate name",
			body: `{"restaurant_name":"Noodle House"}`,
			createFn: func(context.Context, models.Restaurant) (models.Restaurant, error) {
				return models.Restaurant{}, store.ErrRestaurantAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantError:  store.ErrRestaurantAlreadyExists.Error(),
		},
		{
			name: "blank name after trimming",
			body: `{"restaurant_name":"   "}`,
			createFn: func(context.Context, models.Restaurant) (models.Restaurant, error) {
				return models.Restaurant{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyRestaurantName)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided: restaurant name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{
				RestaurantService: &mockRestaurantService{createFn: tt.createFn},
			})

			rec := serve(t, h, http.MethodPost, "/api/restaurant/add", tt.body, "valid")
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusCreated {
				assert.Equal(t, tt.wantError, decodeMessage(t, rec).Error)
				return
			}

			var resp models.RestaurantResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Restaurant created successfully", resp.Msg)
			assert.Equal(t, int64(3), resp.Restaurant.RestaurantID)
			assert.Equal(t, "Noodle House", resp.Restaurant.Name)
			require.NotNil(t, resp.Restaurant.Description)
			assert.Equal(t, "hand-pulled", *resp.Restaurant.Description)
		})
	}
}

func TestRestaurantRoutes_RequireAuth(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, path := range []string{"/api/restaurant/all", "/api/restaurant/1", "/api/restaurant/search?query=x"} {
		rec := serve(t, h, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		rec = serve(t, h, http.MethodGet, path, "", "expired")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestListRestaurants(t *testing.T) {
	tests := []struct {
		name      string
		listed    []models.Restaurant
		wantCount int
	}{
		{name: "empty directory", listed: nil, wantCount: 0},
		{name: "two restaurants", listed: []models.Restaurant{{RestaurantID: 1, Name: "A"}, {RestaurantID: 2, Name: "B"}}, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{
				RestaurantService: &mockRestaurantService{
					listFn: func(context.Context) ([]models.Restaurant, error) { return tt.listed, nil },
				},
			})

			rec := serve(t, h, http.MethodGet, "/api/restaurant/all", "", "valid")
			require.Equal(t, http.StatusOK, rec.Code)

			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
			assert.NotEqual(t, "null", string(raw["restaurants"]))

			var resp models.RestaurantsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Restaurants, tt.wantCount)
		})
	}
}

func TestSearchRestaurants(t *testing.T) {
	var got models.RestaurantSearch
	h := newTestHandler(t, &service.Services{
		RestaurantService: &mockRestaurantService{
			searchFn: func(_ context.Context, search models.RestaurantSearch) ([]models.Restaurant, error) {
				got = search
				if search.IsEmpty() {
					return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptySearch)
				}
				return []models.Restaurant{{RestaurantID: 1, Name: "Noodle House"}}, nil
			},
		},
	})

	rec := serve(t, h, http.MethodGet, "/api/restaurant/search?query=noodle&cuisine=Chinese&category=Main", "", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RestaurantSearch{Query: "noodle", Cuisine: "Chinese", Category: "Main"}, got)

	var resp models.RestaurantsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	rec = serve(t, h, http.MethodGet, "/api/restaurant/search", "", "valid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec).Error, validators.ErrEmptySearch.Error())
}

func TestGetRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "found", path: "/api/restaurant/3", wantStatus: http.StatusOK},
		{name: "not found", path: "/api/restaurant/404", wantStatus: http.StatusNotFound},
		{name: "not a number", path: "/api/restaurant/abc", wantStatus: http.StatusBadRequest},
		{name: "not positive", path: "/api/restaurant/0", wantStatus: http.StatusBadRequest},
	}

	h := newTestHandler(t, &service.Services{
		RestaurantService: &mockRestaurantService{
			getFn: func(_ context.Context, restaurantID int64) (models.Restaurant, error) {
				if restaurantID != 3 {
					return models.Restaurant{}, store.ErrRestaurantNotFound
				}
				return models.Restaurant{RestaurantID: 3, Name: "Noodle House"}, nil
			},
		},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tt.path, "", "valid")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateRestaurant(t *testing.T) {
	var got models.RestaurantUpdate
	h := newTestHandler(t, &service.Services{
		RestaurantService: &mockRestaurantService{
			updateFn: func(_ context.Context, update models.RestaurantUpdate) (models.Restaurant, error) {
				got = update
				if update.IsEmpty() {
					return models.Restaurant{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate)
				}
				return models.Restaurant{RestaurantID: update.RestaurantID, Name: *update.Name}, nil
			},
		},
	})

	rec := serve(t, h, http.MethodPut, "/api/restaurant/3", `{"restaurant_name":"Noodle Palace"}`, "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), got.RestaurantID)
	assert.Equal(t, ptr("Noodle Palace"), got.Name)
	assert.Nil(t, got.Description)

	rec = serve(t, h, http.MethodPut, "/api/restaurant/3", `{}`, "valid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided: at least one field must be provided for update", decodeMessage(t, rec).Error)

	rec = serve(t, h, http.MethodPut, "/api/restaurant/3", "", "valid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRestaurant(t *testing.T) {
	deleted := map[int64]bool{}
	h := newTestHandler(t, &service.Services{
		RestaurantService: &mockRestaurantService{
			deleteFn: func(_ context.Context, restaurantID int64) error {
				if deleted[restaurantID] {
					return store.ErrRestaurantNotFound
				}
				deleted[restaurantID] = true
				return nil
			},
		},
	})

	rec := serve(t, h, http.MethodDelete, "/api/restaurant/3", "", "valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Restaurant deleted successfully", decodeMessage(t, rec).Msg)

	rec = serve(t, h, http.MethodDelete, "/api/restaurant/3", "", "valid")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
