// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

// tokenService is the JWT implementation of TokenService.
// All parameters are read-only after construction.
type tokenService struct {
	opts utils.JWTOptions

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// now is the clock used for "iat", "exp" and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the token settings of cfg.
// It fails if the configured signing method is not an HMAC algorithm.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	svc, err := newTokenService(cfg, time.Now, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) (*tokenService, error) {
	method, err := utils.HMACSigningMethod(cfg.TokenSigningMethod)
	if err != nil {
		return nil, err
	}

	return &tokenService{
		opts: utils.JWTOptions{
			Issuer:        cfg.TokenIssuer,
			SigningMethod: method,
			SignKey:       cfg.TokenSignKey,
		},
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		now:                  now,
		logger:               logger,
	}, nil
}

func (s *tokenService) IssueAccessToken(ctx context.Context, subject string) (models.Token, error) {
	return s.issue(ctx, subject, models.AccessToken, s.accessTokenDuration)
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, subject string) (models.Token, error) {
	return s.issue(ctx, subject, models.RefreshToken, s.refreshTokenDuration)
}

func (s *tokenService) issue(ctx context.Context, subject string, tokenType models.TokenType, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.opts, subject, tokenType, s.now(), duration)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "tokenService.issue").
			Str("token_type", string(tokenType)).
			Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate checks signature, algorithm, issuer, expiry, subject and token
// type. The concrete reason of a failure is only logged.
func (s *tokenService) Validate(ctx context.Context, tokenString string, tokenType models.TokenType) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.opts, tokenType, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "tokenService.Validate").
			Str("token_type", string(tokenType)).
			Msg("token rejected")
		return "", ErrTokenIsExpiredOrInvalid
	}

	return token.Subject(), nil
}
