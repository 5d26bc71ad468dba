// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt can hash without
// truncation.
const MaxPasswordLength = 72

// ErrPasswordMismatch is returned by CheckPassword when password does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

// HashPassword returns the salted bcrypt hash of password.
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword verifies password against a hash produced by HashPassword.
//
// Returns ErrPasswordMismatch for a wrong or over-long password and a wrapped error when
// the stored hash itself is malformed.
func CheckPassword(hash, password string) error {
	// bcrypt ignores bytes past the limit, so a longer input could match a
	// stored prefix
	if len(password) > MaxPasswordLength {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error checking password: %w", err)
	}
}
