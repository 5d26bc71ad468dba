// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	// AccessToken authorizes requests to protected endpoints.
	AccessToken TokenType = "access"

	// RefreshToken is used solely to obtain new access tokens.
	RefreshToken TokenType = "refresh"
)

// BearerTokenType is the token_type reported to clients.
const BearerTokenType = "bearer"

// Claims is the JWT claim set of every issued token.
//
// The subject ("sub") carries the user's email.
type Claims struct {
	jwt.RegisteredClaims

	// TokenType prevents a refresh token from being accepted as an
	// access token and vice versa.
	TokenType TokenType `json:"token_type"`
}

// Token wraps a signed JWT.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims holds the claims the token was issued or parsed with.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Subject returns the "sub" claim of the token.
func (t *Token) Subject() string {
	return t.Claims.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

// RefreshRequest is the body of a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
