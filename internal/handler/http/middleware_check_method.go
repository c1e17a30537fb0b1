// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

// routeNotFound is the router's NotFound and MethodNotAllowed handler.
//
// A path served under other methods is reported like an unknown path: 404
// with a JSON message and no Allow header, so clients cannot probe which
// methods a resource supports.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{
		Msg: "Route not found: " + r.Method + " " + r.URL.Path,
	}, http.StatusNotFound)
}
