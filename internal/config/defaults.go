// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied before any other source.
const (
	DefaultTokenSigningMethod   = "HS256"
	DefaultTokenIssuer          = "go-contact-book"
	DefaultAccessTokenDuration  = 30 * time.Minute
	DefaultRefreshTokenDuration = 30 * 24 * time.Hour
	DefaultLogLevel             = "info"
	DefaultVersion              = "dev"

	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultMaxOpenConns = 10
	DefaultMaxIdleConns = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSigningMethod:   DefaultTokenSigningMethod,
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			PasswordHashCost:     bcrypt.DefaultCost,
			LogLevel:             DefaultLogLevel,
			Version:              DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
