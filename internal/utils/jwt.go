// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenParams describes a token to be issued by GenerateJWTToken.
type TokenParams struct {
	Issuer   string
	UserID   int64
	Type     models.TokenType
	ID       string
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the standard iss, sub, jti, iat and exp claims together
// with a "typ" claim distinguishing access tokens from refresh tokens.
// Issuer, type, id, duration and sign key are all required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "restaurant-directory", UserID: 42, Type: models.AccessToken,
//	    ID: jti, Duration: time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Duration == 0 || params.SignKey == "" || params.ID == "" || params.Type == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		Type: params.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.FormatInt(params.UserID, 10),
			ID:        params.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		TokenClaims:  claims,
		SignedString: tokenString,
		UserID:       params.UserID,
	}, nil
}

// ParseOption tweaks the validation done by ValidateAndParseJWTToken.
type ParseOption func(*parseOptions)

type parseOptions struct {
	skipExpiry bool
}

// WithoutExpiryCheck accepts tokens whose exp claim lies in the past.
// The signature and issuer are still verified.
func WithoutExpiryCheck() ParseOption {
	return func(o *parseOptions) {
		o.skipExpiry = true
	}
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check unless WithoutExpiryCheck is given
//   - Subject (sub) claim presence and conversion to int64 UserID
//   - jti presence
//
// The token type is returned as-is; callers decide which type they accept.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, opts ...ParseOption) (models.Token, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if o.skipExpiry {
		parserOptions = append(parserOptions, jwt.WithoutClaimsValidation())
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, parserOptions...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	// WithoutClaimsValidation also disables the issuer check
	if o.skipExpiry && claims.Issuer != tokenIssuer {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", jwt.ErrTokenInvalidIssuer)
	}

	if subject, _ := claims.GetSubject(); subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed := models.Token{
		Token:        token,
		TokenClaims:  *claims,
		SignedString: tokenString,
	}
	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	parsed.UserID = userID

	if claims.ID == "" {
		return models.Token{}, errors.New("empty token id error")
	}

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
