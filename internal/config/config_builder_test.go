// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/contacts"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.layers())
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		App:     App{TokenSignKey: "json-key", TokenIssuer: "json-issuer", Version: "1.0.0"},
		Storage: Storage{DB: DB{DSN: "postgres://json"}},
	}
	b.env = &StructuredConfig{
		App: App{TokenIssuer: "env-issuer"},
	}
	b.flags = &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://flags"}},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultAccessTokenDuration, cfg.App.AccessTokenDuration)
}

func TestBuild_ZeroValuesDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.defaults = validConfig()
	b.flags = &StructuredConfig{}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.env = &StructuredConfig{}
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_FlagPathWinsOverEnvPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "env"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "flag"}})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "flag", b.json.App.Version)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: "/definitely/not/here.json"}
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Nil(t, b.flags)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FullPipeline(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":        "json-secret",
			"access_token_duration": "10m",
		},
		"server": map[string]any{
			"request_timeout": "5s",
		},
	})

	t.Setenv("CONFIG", jsonPath)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("APP_VERSION", "1.2.3")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:9000"})
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 10*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, DefaultRefreshTokenDuration, cfg.App.RefreshTokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_MissingSecretFails(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("APP_TOKEN_SIGN_KEY", "")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "unsupported signing method",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSigningMethod = "RS256" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "refresh shorter than access",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RefreshTokenDuration = time.Minute },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative access duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.AccessTokenDuration = -time.Minute },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 99 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Redacted ──────────────────────────────────────────────────────────────────

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := validConfig()

	redacted := cfg.Redacted()

	assert.Equal(t, redactedValue, redacted.App.TokenSignKey)
	assert.Equal(t, redactedValue, redacted.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey, "original must stay intact")
}
