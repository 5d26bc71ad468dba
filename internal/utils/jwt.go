// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-book/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT helpers. They describe the concrete reason of a
// failure and are meant for logs only; the service layer collapses all of
// them into a single "invalid token" outcome.
var (
	ErrInvalidJWTParams          = errors.New("invalid params for JWT token")
	ErrUnsupportedSigningMethod  = errors.New("unsupported token signing method")
	ErrEmptySubject              = errors.New("empty subject")
	ErrUnexpectedTokenType       = errors.New("unexpected token type")
	ErrUnexpectedClaimsStructure = errors.New("unexpected claims structure")
)

// JWTOptions holds the process-wide token parameters shared by issuing and
// validation. It is built once at start-up and never mutated.
type JWTOptions struct {
	// Issuer is the "iss" claim written to and required from every token.
	Issuer string

	// SigningMethod is the symmetric algorithm used to sign tokens.
	// Tokens signed with any other algorithm are rejected.
	SigningMethod *jwt.SigningMethodHMAC

	// SignKey is the shared HMAC secret.
	SignKey string
}

// HMACSigningMethod resolves an algorithm name ("HS256", "HS384", "HS512")
// to its HMAC signing method. Asymmetric and "none" algorithms are refused.
func HMACSigningMethod(name string) (*jwt.SigningMethodHMAC, error) {
	method, ok := jwt.GetSigningMethod(name).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningMethod, name)
	}
	return method, nil
}

func (o JWTOptions) validate() error {
	if o.Issuer == "" || o.SignKey == "" || o.SigningMethod == nil {
		return ErrInvalidJWTParams
	}
	return nil
}

// GenerateJWTToken creates a signed JWT for subject.
//
// The token includes the following claims:
//   - Issuer     (iss): opts.Issuer
//   - Subject    (sub): the user's email
//   - IssuedAt   (iat): issuedAt
//   - ExpiresAt  (exp): issuedAt plus tokenDuration
//   - token_type:      access or refresh
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(opts, "alice@example.com", models.AccessToken, time.Now(), 30*time.Minute)
func GenerateJWTToken(opts JWTOptions, subject string, tokenType models.TokenType, issuedAt time.Time, tokenDuration time.Duration) (models.Token, error) {
	if err := opts.validate(); err != nil {
		return models.Token{}, err
	}
	if subject == "" || tokenDuration <= 0 || tokenType == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(opts.SigningMethod, claims)
	tokenString, err := token.SignedString([]byte(opts.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with opts.SignKey
//   - Algorithm pinning to opts.SigningMethod
//   - Issuer (iss) claim check against opts.Issuer
//   - Expiration (exp) claim presence and check against now
//   - Subject (sub) claim presence
//   - token_type claim equal to tokenType
func ValidateAndParseJWTToken(tokenString string, opts JWTOptions, tokenType models.TokenType, now time.Time) (models.Token, error) {
	if err := opts.validate(); err != nil {
		return models.Token{}, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(opts.SignKey), nil
	},
		jwt.WithIssuer(opts.Issuer),
		jwt.WithValidMethods([]string{opts.SigningMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok {
		return models.Token{}, ErrUnexpectedClaimsStructure
	}
	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}
	if claims.TokenType != tokenType {
		return models.Token{}, fmt.Errorf("%w: want %q, got %q", ErrUnexpectedTokenType, tokenType, claims.TokenType)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
