// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const jsonContentType = "application/json"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, jsonContentType))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(requireJSON)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(requireJSON)
		r.Use(h.auth)

		r.Delete("/api/auth/logout", h.logout)

		r.Post("/api/restaurant/add", h.addRestaurant)
		r.Get("/api/restaurant/all", h.listRestaurants)
		r.Get("/api/restaurant/search", h.searchRestaurants)
		r.Get("/api/restaurant/{id}", h.getRestaurant)
		r.Put("/api/restaurant/{id}", h.updateRestaurant)
		r.Delete("/api/restaurant/{id}", h.deleteRestaurant)

		r.Post("/api/restaurant-menus/add/{restaurant_id}", h.addMenuItem)
		r.Get("/api/restaurant-menus/get/{restaurant_id}", h.listMenuItems)
		r.Put("/api/restaurant-menus/{restaurant_id}/{menu_item_id}", h.updateMenuItem)
		r.Delete("/api/restaurant-menus/{restaurant_id}/{menu_item_id}", h.deleteMenuItem)

		r.Post("/api/images/presigned/upload", h.presignUpload)
		r.Post("/api/images/presigned/update", h.presignUpdate)
		r.Post("/api/images/presigned/delete", h.presignDelete)
		r.Post("/api/images/presigned/get", h.presignGet)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
