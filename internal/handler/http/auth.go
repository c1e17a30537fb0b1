// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid registration request", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid registration request", err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, "user registration failed", err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Msg:    "User registered successfully",
		UserID: registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, "invalid login request", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "invalid login request", err)
		return
	}

	pair, err := h.services.AuthService.Login(ctx, req.Identifier(), req.Password)
	if err != nil {
		writeError(w, r, "invalid login/password", err)
		return
	}

	if h.cookieTokens {
		setTokenCookie(w, r, accessTokenCookie, pair.Access)
		setTokenCookie(w, r, refreshTokenCookie, pair.Refresh)
	}

	log.Debug().Str("username", pair.Username).Str("jti", pair.Access.JTI()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken:  pair.Access.SignedString,
		RefreshToken: pair.Refresh.SignedString,
		Username:     pair.Username,
	}, http.StatusOK)
}

// refresh reads the refresh token from the "Authorization" header, the
// refresh_token body field or the refresh_token cookie, in that order.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, "invalid refresh request", err)
		return
	}

	refreshToken := req.RefreshToken
	if r.Header.Get("Authorization") != "" || refreshToken == "" {
		tokenString, err := tokenFromRequest(r, refreshTokenCookie)
		if err != nil {
			writeError(w, r, "refresh token required", err)
			return
		}
		refreshToken = tokenString
	}

	access, err := h.services.AuthService.Refresh(ctx, refreshToken)
	if err != nil {
		writeError(w, r, "token refresh failed", err)
		return
	}

	if h.cookieTokens {
		setTokenCookie(w, r, accessTokenCookie, access)
	}

	utils.WriteJSON(w, models.RefreshResponse{AccessToken: access.SignedString}, http.StatusOK)
}

// logout revokes the access token the request was authorized with and, if
// supplied in the body or cookie, the refresh token. A refresh token of
// another user is rejected and nothing is revoked.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LogoutRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, "invalid logout request", err)
		return
	}

	accessToken, err := tokenFromRequest(r, accessTokenCookie)
	if err != nil {
		writeError(w, r, "unauthorized", err)
		return
	}

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "unauthorized", ErrNoToken)
		return
	}

	tokens := []string{accessToken}
	refreshToken := req.RefreshToken
	if refreshToken == "" {
		if cookie, cookieErr := r.Cookie(refreshTokenCookie); cookieErr == nil {
			refreshToken = cookie.Value
		}
	}
	if refreshToken != "" {
		tokens = append(tokens, refreshToken)
	}

	if err = h.services.AuthService.Logout(ctx, userID, tokens...); err != nil {
		writeError(w, r, "logout failed", err)
		return
	}

	if h.cookieTokens {
		clearTokenCookie(w, r, accessTokenCookie)
		clearTokenCookie(w, r, refreshTokenCookie)
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "Successfully logged out"}, http.StatusOK)
}

func setTokenCookie(w http.ResponseWriter, r *http.Request, name string, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.Expiry(),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
