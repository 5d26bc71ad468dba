// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks contact book input before it reaches storage:
// credentials on register and login, new contacts, partial contact updates,
// list paging and the upcoming-birthday window.
//
// Services hold a Validator per input kind and may name the fields to check,
// e.g. login checks only validators.FieldEmail.
package validators

import "context"

// Validator checks obj and returns a sentinel from this package on the first
// violation. With no fields every rule for obj's type applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
