// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from long-lived refresh
// tokens. It is carried in the "typ" claim of every issued JWT.
type TokenType string

const (
	// AccessToken authorizes calls to protected endpoints.
	AccessToken TokenType = "access"
	// RefreshToken can only be exchanged for a new access token.
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the claim set of every JWT issued by the service:
// the registered claims (sub, jti, iat, exp, iss) plus the token type.
type TokenClaims struct {
	Type TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to the client.
//
// UserID is a parsed copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// TokenClaims is the decoded claim set.
	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// JTI returns the unique token identifier used as the revocation key.
func (t *Token) JTI() string {
	return t.ID
}

// Expiry returns the "exp" claim, or the zero time when the claim is absent.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	Access   Token
	Refresh  Token
	Username string
}

// RevokedToken is a row of the revocation ledger.
type RevokedToken struct {
	JTI       string    `json:"jti"`
	Type      TokenType `json:"token_type"`
	UserID    int64     `json:"user_id"`
	RevokedAt time.Time `json:"revoked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
