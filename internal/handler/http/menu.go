// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurantID, err := idParam(r, "restaurant_id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}

	var req models.MenuItemRequest
	if err = decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid menu item", err)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid menu item", err)
		return
	}

	item, err := h.services.MenuService.AddMenuItem(ctx, restaurantID, models.MenuItemDraft{
		DishName:  req.DishName,
		Cuisine:   req.Cuisine,
		Category:  req.Category,
		Price:     req.Price,
		Rating:    req.Rating,
		ImageKeys: req.ImageKeys,
	})
	if err != nil {
		writeError(w, r, "error adding menu item", err)
		return
	}

	utils.WriteJSON(w, models.MenuItemResponse{
		Msg:      "Menu item added successfully",
		MenuItem: item,
	}, http.StatusCreated)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, "restaurant_id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}

	items, err := h.services.MenuService.ListMenuItems(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, "error retrieving menu", err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	utils.WriteJSON(w, models.MenuItemsResponse{
		Msg:       "Menu retrieved successfully",
		MenuItems: items,
		Count:     len(items),
	}, http.StatusOK)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	restaurantID, err := idParam(r, "restaurant_id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}
	menuItemID, err := idParam(r, "menu_item_id")
	if err != nil {
		writeError(w, r, "invalid menu item id", err)
		return
	}

	var req models.UpdateMenuItemRequest
	if err = decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid menu item update", err)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid menu item update", err)
		return
	}

	item, err := h.services.MenuService.UpdateMenuItem(ctx, models.MenuItemUpdate{
		MenuItemID:   menuItemID,
		RestaurantID: restaurantID,
		DishName:     req.DishName,
		Cuisine:      req.Cuisine,
		Category:     req.Category,
		Price:        req.Price,
		Rating:       req.Rating,
		ImageKeys:    req.ImageKeys,
	})
	if err != nil {
		writeError(w, r, "error updating menu item", err)
		return
	}

	utils.WriteJSON(w, models.MenuItemResponse{
		Msg:      "Menu item updated successfully",
		MenuItem: item,
	}, http.StatusOK)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, "restaurant_id")
	if err != nil {
		writeError(w, r, "invalid restaurant id", err)
		return
	}
	menuItemID, err := idParam(r, "menu_item_id")
	if err != nil {
		writeError(w, r, "invalid menu item id", err)
		return
	}

	if err = h.services.MenuService.DeleteMenuItem(r.Context(), restaurantID, menuItemID); err != nil {
		writeError(w, r, "error deleting menu item", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "Menu item deleted successfully"}, http.StatusOK)
}
