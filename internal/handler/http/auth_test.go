// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAuth(t *testing.T, auth *mockAuthService, handler func(*Handler) http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(h).ServeHTTP(rec, req)
	return rec
}

func registerHandler(h *Handler) http.HandlerFunc { return h.register }
func loginHandler(h *Handler) http.HandlerFunc    { return h.login }
func refreshHandler(h *Handler) http.HandlerFunc  { return h.refresh }

const aliceCredentials = `{"email":"alice@example.com","password":"pw123"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	createdAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			assert.Equal(t, "alice@example.com", c.Email)
			assert.Equal(t, "pw123", c.Password)
			return models.User{UserID: 1, Email: c.Email, PasswordHash: "never-shown", CreatedAt: createdAt}, nil
		},
	}

	rec := serveAuth(t, auth, registerHandler, aliceCredentials)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@example.com","created_at":"2024-03-10T12:00:00Z"}`, rec.Body.String())
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid JSON", body: "{bad", wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"login":"alice"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "invalid data",
			body:       aliceCredentials,
			serviceErr: fmt.Errorf("%w: invalid email", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       aliceCredentials,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "storage unavailable",
			body:       aliceCredentials,
			serviceErr: store.ErrStorageUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unexpected error",
			body:       aliceCredentials,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					called = true
					return models.User{}, tt.serviceErr
				},
			}

			rec := serveAuth(t, auth, registerHandler, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.serviceErr != nil, called)
			assert.NotContains(t, rec.Body.String(), "boom", "server errors must stay opaque")
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{AccessToken: "a.b.c", RefreshToken: "d.e.f", TokenType: models.BearerTokenType}, nil
		},
	}

	rec := serveAuth(t, auth, loginHandler, aliceCredentials)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"access_token":"a.b.c","refresh_token":"d.e.f","token_type":"bearer"}`, rec.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrInvalidCredentials
		},
	}

	rec := serveAuth(t, auth, loginHandler, aliceCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrInvalidCredentials.Error())
}

func TestLogin_InvalidJSON(t *testing.T) {
	rec := serveAuth(t, &mockAuthService{}, loginHandler, "not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, token string) (models.TokenPair, error) {
			assert.Equal(t, "refresh.jwt", token)
			return models.TokenPair{AccessToken: "new.access", TokenType: models.BearerTokenType}, nil
		},
	}

	rec := serveAuth(t, auth, refreshHandler, `{"refresh_token":"refresh.jwt"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new.access", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotContains(t, body, "refresh_token")
}

func TestRefresh_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, _ string) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	rec := serveAuth(t, auth, refreshHandler, `{"refresh_token":"access.jwt"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
