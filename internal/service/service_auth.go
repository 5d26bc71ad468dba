// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService issues and validates access and refresh tokens.
	tokenService TokenService

	// validator checks credentials before they reach the repository.
	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		tokenService:     tokenService,
		validator:        validators.NewUserValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID, without the
// password hash) or:
//   - ErrInvalidDataProvided if the email or password is invalid.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Info().Err(err).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: credentials.Email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// Login authenticates an existing user and issues an access and a refresh
// token for them.
//
// An unknown email and a wrong password are indistinguishable to the caller:
// both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	// password length is a registration rule; a long password at login is just wrong
	if err := a.validator.Validate(ctx, credentials, validators.FieldEmail); err != nil {
		log.Info().Err(err).Msg("invalid login data provided")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if credentials.Password == "" {
		log.Info().Msg("login without password")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyPassword)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
			return models.TokenPair{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.TokenPair{}, err
	}

	accessToken, err := a.tokenService.IssueAccessToken(ctx, foundUser.Email)
	if err != nil {
		return models.TokenPair{}, err
	}

	refreshToken, err := a.tokenService.IssueRefreshToken(ctx, foundUser.Email)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
		TokenType:    models.BearerTokenType,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
// The refresh token itself is not rotated.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if refreshToken == "" {
		return models.TokenPair{}, fmt.Errorf("%w: refresh token is required", ErrInvalidDataProvided)
	}

	subject, err := a.tokenService.Validate(ctx, refreshToken, models.RefreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}

	accessToken, err := a.tokenService.IssueAccessToken(ctx, subject)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		AccessToken: accessToken.String(),
		TokenType:   models.BearerTokenType,
	}, nil
}

// ResolveCaller maps a bearer access token to the user it was issued for.
// A token whose subject no longer exists is treated as invalid.
func (a *authService) ResolveCaller(ctx context.Context, accessToken string) (models.User, error) {
	subject, err := a.tokenService.Validate(ctx, accessToken, models.AccessToken)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Info().Msg("token subject has no account")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, fmt.Errorf("caller lookup failed: %w", err)
	}

	return user, nil
}
