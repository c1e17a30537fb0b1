// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/objectstore"
	"github.com/MKhiriev/go-restaurant-directory/internal/service"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

// errorStatusMap maps sentinel errors to response codes. The sentinels of
// one error chain never map to different codes. service.ErrWrongPassword is
// always wrapped in service.ErrInvalidCredentials and must not be listed.
var errorStatusMap = map[error]int{
	ErrNoToken:                    http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPathParam:           http.StatusBadRequest,
	ErrUnsupportedMediaType:       http.StatusUnsupportedMediaType,

	validators.ErrInvalidRequest: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPrice:            http.StatusBadRequest,
	service.ErrInvalidObjectKey:        http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenRevoked:            http.StatusUnauthorized,
	service.ErrWrongTokenType:          http.StatusUnauthorized,
	service.ErrTokenOwnerMismatch:      http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists:   http.StatusConflict,
	store.ErrEmailAlreadyExists:      http.StatusConflict,
	store.ErrRestaurantAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:          http.StatusNotFound,
	store.ErrRestaurantNotFound:      http.StatusNotFound,
	store.ErrMenuItemNotFound:        http.StatusNotFound,
	store.ErrConstraintViolation:     http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,

	objectstore.ErrUnsupportedOperation: http.StatusInternalServerError,
	objectstore.ErrPresign:              http.StatusInternalServerError,
}

// detailedErrors may expose their full message to clients: it is built
// from validation rules, never from driver output.
var detailedErrors = []error{
	validators.ErrInvalidRequest,
	service.ErrInvalidDataProvided,
	service.ErrInvalidObjectKey,
}

// classifyError returns the response code of err and the sentinel it matched.
func classifyError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes it as {msg, error}. For 4xx responses the
// error field carries the matched sentinel text; 5xx responses carry msg only.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	log := logger.FromRequest(r)

	status, target := classifyError(err)
	response := models.MessageResponse{Msg: msg}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteJSON(w, response, status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg(msg)
	response.Error = errorText(err, target)
	utils.WriteJSON(w, response, status)
}

func errorText(err, target error) string {
	if target == nil {
		return ""
	}
	for _, detailed := range detailedErrors {
		if target != detailed {
			continue
		}
		full := err.Error()
		if i := strings.Index(full, target.Error()); i >= 0 {
			return full[i:]
		}
	}
	return target.Error()
}
