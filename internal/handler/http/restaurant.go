// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

func (h *Handler) addRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateRestaurantRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid restaurant", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid restaurant", err)
		return
	}

	restaurant, err := h.services.RestaurantService.CreateRestaurant(ctx, models.Restaurant{
		Name:        req.Name,
		ImageKey:    req.ImageKey,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, "error creating restaurant", err)
		return
	}

	utils.WriteJSON(w, models.RestaurantResponse{
		Msg:        "Restaurant created successfully",
		Restaurant: restaurant,
	}, http.StatusCreated)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.RestaurantService.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, r, "error retrieving restaurants", err)
		return
	}

	writeRestaurants(w, "Restaurants retrieved successfully", restaurants)
}

// searchRestaurants reads the query, cuisine and category URL parameters.
func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	restaurants, err := h.services.RestaurantService.SearchRestaurants(r.Context(), models.RestaurantSearch{
		Query:    params.Get("query"),
		Cuisine:  params.Get("cuisine"),
		Category: params.Get("category"),
	})
	if err != nil {
		writeError(w, r, "error searching restaurants", err)
		return
	}

	writeRestaurants(w, "Search results retrieved successfully", restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}

	restaurant, err := h.services.RestaurantService.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, "error retrieving restaurant", err)
		return
	}

	utils.WriteJSON(w, models.RestaurantResponse{
		Msg:        "Restaurant retrieved successfully",
		Restaurant: restaurant,
	}, http.StatusOK)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurantID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}

	var req models.UpdateRestaurantRequest
	if err = decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid restaurant update", err)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid restaurant update", err)
		return
	}

	restaurant, err := h.services.RestaurantService.UpdateRestaurant(ctx, models.RestaurantUpdate{
		RestaurantID: restaurantID,
		Name:         req.Name,
		ImageKey:     req.ImageKey,
		Description:  req.Description,
	})
	if err != nil {
		writeError(w, r, "error updating restaurant", err)
		return
	}

	utils.WriteJSON(w, models.RestaurantResponse{
		Msg:        "Restaurant updated successfully",
		Restaurant: restaurant,
	}, http.StatusOK)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}

	if err = h.services.RestaurantService.DeleteRestaurant(r.Context(), restaurantID); err != nil {
		writeError(w, r, "error deleting restaurant", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "Restaurant deleted successfully"}, http.StatusOK)
}

func writeRestaurants(w http.ResponseWriter, msg string, restaurants []models.Restaurant) {
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	utils.WriteJSON(w, models.RestaurantsResponse{
		Msg:         msg,
		Restaurants: restaurants,
		Count:       len(restaurants),
	}, http.StatusOK)
}
