// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-book/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTOptions() JWTOptions {
	return JWTOptions{
		Issuer:        "test-issuer",
		SigningMethod: jwt.SigningMethodHS256,
		SignKey:       "secret-key",
	}
}

func TestHMACSigningMethod(t *testing.T) {
	tests := []struct {
		name    string
		alg     string
		wantErr bool
	}{
		{name: "HS256", alg: "HS256"},
		{name: "HS384", alg: "HS384"},
		{name: "HS512", alg: "HS512"},
		{name: "asymmetric RS256 refused", alg: "RS256", wantErr: true},
		{name: "none refused", alg: "none", wantErr: true},
		{name: "unknown refused", alg: "XX999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := HMACSigningMethod(tt.alg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedSigningMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.alg, method.Alg())
		})
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateJWTToken(testJWTOptions(), "alice@example.com", models.AccessToken, issuedAt, time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, "alice@example.com", token.Subject())
	assert.Equal(t, "test-issuer", token.Claims.Issuer)
	assert.Equal(t, models.AccessToken, token.Claims.TokenType)
	assert.Equal(t, issuedAt.Add(time.Hour), token.Claims.ExpiresAt.Time)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	now := time.Now()
	noIssuer := testJWTOptions()
	noIssuer.Issuer = ""
	noKey := testJWTOptions()
	noKey.SignKey = ""
	noMethod := testJWTOptions()
	noMethod.SigningMethod = nil

	tests := []struct {
		name     string
		opts     JWTOptions
		subject  string
		duration time.Duration
	}{
		{"empty issuer", noIssuer, "a@b.c", time.Hour},
		{"empty key", noKey, "a@b.c", time.Hour},
		{"no signing method", noMethod, "a@b.c", time.Hour},
		{"empty subject", testJWTOptions(), "", time.Hour},
		{"zero duration", testJWTOptions(), "a@b.c", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.opts, tt.subject, models.AccessToken, now, tt.duration)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Now()
	generated, err := GenerateJWTToken(testJWTOptions(), "bob@example.com", models.RefreshToken, now, 5*time.Minute)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testJWTOptions(), models.RefreshToken, now)

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", parsed.Subject())
	assert.Equal(t, models.RefreshToken, parsed.Claims.TokenType)
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	exp := issuedAt.Add(30 * time.Minute)

	generated, err := GenerateJWTToken(testJWTOptions(), "a@b.c", models.AccessToken, issuedAt, 30*time.Minute)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testJWTOptions(), models.AccessToken, exp.Add(-time.Second))
	assert.NoError(t, err, "token must be valid one second before expiry")

	_, err = ValidateAndParseJWTToken(generated.SignedString, testJWTOptions(), models.AccessToken, exp.Add(time.Second))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired, "token must be invalid one second after expiry")
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	now := time.Now()
	opts := testJWTOptions()

	valid, err := GenerateJWTToken(opts, "a@b.c", models.AccessToken, now, time.Hour)
	require.NoError(t, err)

	wrongKey := opts
	wrongKey.SignKey = "wrong-key"

	wrongIssuer := opts
	wrongIssuer.Issuer = "fake-issuer"

	otherAlg := opts
	otherAlg.SigningMethod = jwt.SigningMethodHS512
	signedWithHS512, err := GenerateJWTToken(otherAlg, "a@b.c", models.AccessToken, now, time.Hour)
	require.NoError(t, err)

	noExpClaims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: opts.Issuer, Subject: "a@b.c"},
		TokenType:        models.AccessToken,
	}
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpClaims).SignedString([]byte(opts.SignKey))
	require.NoError(t, err)

	noSubClaims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: opts.Issuer, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
		TokenType:        models.AccessToken,
	}
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noSubClaims).SignedString([]byte(opts.SignKey))
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		opts      JWTOptions
		tokenType models.TokenType
		wantErr   error
	}{
		{name: "bad signature", token: valid.SignedString, opts: wrongKey, tokenType: models.AccessToken, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, opts: wrongIssuer, tokenType: models.AccessToken, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "wrong algorithm", token: signedWithHS512.SignedString, opts: opts, tokenType: models.AccessToken, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "missing exp", token: noExp, opts: opts, tokenType: models.AccessToken, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "missing subject", token: noSub, opts: opts, tokenType: models.AccessToken, wantErr: ErrEmptySubject},
		{name: "refresh expected, access given", token: valid.SignedString, opts: opts, tokenType: models.RefreshToken, wantErr: ErrUnexpectedTokenType},
		{name: "malformed", token: "not.a.token", opts: opts, tokenType: models.AccessToken, wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.opts, tt.tokenType, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
