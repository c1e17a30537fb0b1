// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

func (h *Handler) presignUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.PresignUploadRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid presign request", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid presign request", err)
		return
	}

	urls, err := h.services.ImageService.PresignUpload(ctx, req.Files)
	if err != nil {
		writeError(w, r, "error generating presigned urls", err)
		return
	}

	utils.WriteJSON(w, urls, http.StatusOK)
}

func (h *Handler) presignUpdate(w http.ResponseWriter, r *http.Request) {
	h.presignKeys(w, r, h.services.ImageService.PresignUpdate)
}

func (h *Handler) presignDelete(w http.ResponseWriter, r *http.Request) {
	h.presignKeys(w, r, h.services.ImageService.PresignDelete)
}

func (h *Handler) presignGet(w http.ResponseWriter, r *http.Request) {
	h.presignKeys(w, r, h.services.ImageService.PresignGet)
}

type presignFunc func(ctx context.Context, keys []string) ([]models.PresignedURL, error)

func (h *Handler) presignKeys(w http.ResponseWriter, r *http.Request, presign presignFunc) {
	ctx := r.Context()

	var req models.PresignKeysRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid presign request", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid presign request", err)
		return
	}

	urls, err := presign(ctx, req.Keys)
	if err != nil {
		writeError(w, r, "error generating presigned urls", err)
		return
	}

	utils.WriteJSON(w, urls, http.StatusOK)
}
