// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		RestaurantService: &mockRestaurantService{
			getFn: func(_ context.Context, restaurantID int64) (models.Restaurant, error) {
				if restaurantID == 1 {
					return models.Restaurant{RestaurantID: 1}, nil
				}
				return models.Restaurant{}, store.ErrRestaurantNotFound
			},
		},
	})

	serve(t, h, http.MethodGet, "/api/restaurant/1", "", "valid")
	serve(t, h, http.MethodGet, "/api/restaurant/2", "", "valid")
	serve(t, h, http.MethodGet, "/api/restaurant/3", "", "valid")
	serve(t, h, http.MethodGet, "/no/such/route", "", "")

	rec := serve(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `restaurant_directory_http_requests_total{method="GET",route="/api/restaurant/{id}",status="200"} 1`)
	assert.Contains(t, body, `restaurant_directory_http_requests_total{method="GET",route="/api/restaurant/{id}",status="404"} 2`)
	assert.Contains(t, body, `restaurant_directory_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `restaurant_directory_http_request_duration_seconds_count{method="GET",route="/api/restaurant/{id}"} 3`)
}
