// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
)

// Field names accepted by [UserValidator].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// maxEmailLength is the longest address allowed by RFC 5321.
const maxEmailLength = 254

// UserValidator validates registration and login credentials.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.Credentials (value or pointer).
// Without fields both email and password are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > utils.MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare RFC 5322 address: no display name,
// no surrounding whitespace.
func isValidEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength || strings.TrimSpace(email) != email {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email && addr.Name == ""
}
