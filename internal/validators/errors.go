// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("invalid email address")
	ErrEmptyPassword     = errors.New("password is required")
	ErrPasswordTooLong   = errors.New("password is too long")
	ErrEmptyFirstName    = errors.New("first name is required")
	ErrEmptyLastName     = errors.New("last name is required")
	ErrEmptyContactEmail = errors.New("contact email is required")
	ErrEmptyPhoneNumber  = errors.New("phone number is required")
	ErrEmptyBirthday     = errors.New("birthday is required")
	ErrInvalidOwnerID    = errors.New("invalid owner ID")
	ErrInvalidPageLimit  = errors.New("page limit is out of range")
	ErrInvalidDaysWindow = errors.New("days window is out of range")
)
