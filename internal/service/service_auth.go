// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-restaurant-directory/internal/config"
	"github.com/MKhiriev/go-restaurant-directory/internal/logger"
	"github.com/MKhiriev/go-restaurant-directory/internal/store"
	"github.com/MKhiriev/go-restaurant-directory/internal/utils"
	"github.com/MKhiriev/go-restaurant-directory/internal/validators"
	"github.com/MKhiriev/go-restaurant-directory/models"
	"golang.org/x/crypto/bcrypt"
)

// IDGenerator issues unique token ids.
type IDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT token
// lifecycle. Passwords are peppered with HMAC-SHA256 and hashed with bcrypt;
// revoked tokens are kept in the revocation ledger until they expire.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// revokedTokenRepository is the revocation ledger consulted by Verify
	// and Refresh and written by Logout.
	revokedTokenRepository store.RevokedTokenRepository

	// hashKey is the optional HMAC pepper applied before bcrypt. Must match
	// the value used at registration time.
	hashKey string

	// bcryptCost is the bcrypt work factor for new hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// ids issues the jti of every token.
	ids IDGenerator

	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, revokedTokenRepository store.RevokedTokenRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, revokedTokenRepository, cfg, utils.NewUUIDGenerator(), logger)
}

func newAuthService(userRepository store.UserRepository, revokedTokenRepository store.RevokedTokenRepository, cfg config.Auth, ids IDGenerator, logger *logger.Logger) *authService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:         userRepository,
		revokedTokenRepository: revokedTokenRepository,
		hashKey:                cfg.PasswordHashKey,
		bcryptCost:             cost,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		accessTokenDuration:    cfg.AccessTokenDuration,
		refreshTokenDuration:   cfg.RefreshTokenDuration,
		ids:                    ids,
		validator:              validators.NewRequestValidator(),
		logger:                 logger,
	}
}

// Register creates a new user account.
//
// Username, email and password are required and the email must be well
// formed. The plaintext password is replaced by its bcrypt hash before the
// user reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a field is missing or malformed, or the
//     password is longer than 72 bytes.
//   - A wrapped store.ErrUsernameAlreadyExists or store.ErrEmailAlreadyExists.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)

	err := a.validator.Validate(ctx, models.RegisterRequest{
		Username: user.Username,
		Password: user.Password,
		Email:    user.Email,
	})
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	// bcrypt rejects inputs longer than 72 bytes; the validator counts runes.
	if len(user.Password) > maxPasswordBytes {
		log.Error().Str("username", user.Username).Msg("password exceeds byte limit")
		return models.User{}, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidDataProvided, maxPasswordBytes)
	}

	hash, err := a.hashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a user by username or email and issues an access and
// a refresh token.
//
// An unknown identifier and a wrong password both yield
// ErrInvalidCredentials so that callers cannot probe for accounts.
func (a *authService) Login(ctx context.Context, identifier, password string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		log.Error().Msg("empty login or password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, identifier)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("login", identifier).Msg("login attempt for unknown user")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("login", identifier).Msg("user search by login failed")
		return models.TokenPair{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !VerifyCredential(foundUser.PasswordHash, a.pepper(password)) {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	access, err := a.createToken(foundUser.UserID, models.AccessToken, a.accessTokenDuration)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("access token creation failed")
		return models.TokenPair{}, err
	}

	refresh, err := a.createToken(foundUser.UserID, models.RefreshToken, a.refreshTokenDuration)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("refresh token creation failed")
		return models.TokenPair{}, err
	}

	log.Info().Int64("id", foundUser.UserID).Str("jti", access.JTI()).Msg("user logged in")

	return models.TokenPair{
		Access:   access,
		Refresh:  refresh,
		Username: foundUser.Username,
	}, nil
}

// Refresh exchanges a refresh token for a new access token of the same
// subject. Expired, revoked and access tokens are rejected, as are tokens
// of users that no longer exist.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.verify(ctx, refreshToken, models.RefreshToken)
	if err != nil {
		log.Info().Err(err).Msg("refresh token rejected")
		return models.Token{}, err
	}

	access, err := a.createToken(token.UserID, models.AccessToken, a.accessTokenDuration)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("access token creation failed")
		return models.Token{}, err
	}

	return access, nil
}

// Logout revokes the given tokens of either type for userID.
//
// The signature and issuer are verified but expiry is not, so a token that
// expired while the client held it can still be revoked. All tokens are
// parsed and their subjects compared to userID before anything is written:
// a foreign token yields ErrTokenOwnerMismatch and revokes nothing. Revoking
// a token twice succeeds.
func (a *authService) Logout(ctx context.Context, userID int64, tokenStrings ...string) error {
	log := logger.FromContext(ctx)

	tokens := make([]models.Token, 0, len(tokenStrings))
	for _, tokenString := range tokenStrings {
		token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, utils.WithoutExpiryCheck())
		if err != nil {
			log.Info().Err(err).Msg("logout with invalid token")
			return ErrTokenIsExpiredOrInvalid
		}
		if token.UserID != userID {
			log.Warn().Int64("id", userID).Int64("owner", token.UserID).Str("jti", token.JTI()).Msg("logout with foreign token")
			return fmt.Errorf("%w: %s token", ErrTokenOwnerMismatch, token.Type)
		}
		tokens = append(tokens, token)
	}

	for _, token := range tokens {
		err := a.revokedTokenRepository.Revoke(ctx, models.RevokedToken{
			JTI:       token.JTI(),
			Type:      token.Type,
			UserID:    token.UserID,
			RevokedAt: time.Now().UTC(),
			ExpiresAt: token.Expiry().UTC(),
		})
		if err != nil {
			log.Err(err).Str("jti", token.JTI()).Msg("token revocation failed")
			return fmt.Errorf("token revocation failed: %w", err)
		}

		log.Info().Int64("id", token.UserID).Str("jti", token.JTI()).Str("type", string(token.Type)).Msg("token revoked")
	}

	return nil
}

// Verify validates an access token: signature, issuer, expiry and type are
// checked first, then the revocation ledger. A token whose subject has been
// deleted is rejected with ErrTokenIsExpiredOrInvalid.
func (a *authService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	return a.verify(ctx, tokenString, models.AccessToken)
}

func (a *authService) verify(ctx context.Context, tokenString string, tokenType models.TokenType) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Type != tokenType {
		return models.Token{}, fmt.Errorf("%w: expected %s token, got %q", ErrWrongTokenType, tokenType, token.Type)
	}

	revoked, err := a.revokedTokenRepository.IsRevoked(ctx, token.JTI())
	if err != nil {
		return models.Token{}, fmt.Errorf("revocation lookup failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrTokenRevoked
	}

	_, err = a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Token{}, fmt.Errorf("%w: user %d no longer exists", ErrTokenIsExpiredOrInvalid, token.UserID)
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return token, nil
}

// createToken issues a signed JWT of the given type for userID with a fresh jti.
func (a *authService) createToken(userID int64, tokenType models.TokenType, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		UserID:   userID,
		Type:     tokenType,
		ID:       a.ids.Generate(),
		Duration: duration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

const maxPasswordBytes = 72

// hashPassword returns the bcrypt hash of the peppered password.
func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(a.pepper(password)), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// pepper applies the HMAC pepper when one is configured.
func (a *authService) pepper(password string) string {
	if a.hashKey == "" {
		return password
	}
	return utils.HashString(password, a.hashKey)
}

// VerifyCredential reports whether candidate matches the bcrypt hash.
func VerifyCredential(hash, candidate string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
