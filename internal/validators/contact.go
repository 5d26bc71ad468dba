// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contact-book/models"
)

// Field names accepted by [ContactValidator] for models.Contact.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldBirthday    = "birthday"
	FieldOwnerID     = "owner_id"
	// FieldEmail is shared with [UserValidator].
)

// ContactValidator validates contacts, partial updates, list pages and
// birthday windows.
type ContactValidator struct{}

// NewContactValidator constructs a ContactValidator.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Contact / *models.Contact: required fields, scoped by fields
//   - models.ContactUpdate / *models.ContactUpdate: provided fields only
//   - models.Page: 1 <= Limit <= models.MaxPageLimit
//   - models.BirthdayWindow: 0 <= days <= models.MaxBirthdayWindow
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)
	case models.ContactUpdate:
		return v.validateContactUpdate(ctx, value)
	case *models.ContactUpdate:
		return v.validateContactUpdate(ctx, *value)
	case models.Page:
		if value.Limit < 1 || value.Limit > models.MaxPageLimit {
			return ErrInvalidPageLimit
		}
		return nil
	case models.BirthdayWindow:
		if value < 0 || value > models.MaxBirthdayWindow {
			return ErrInvalidDaysWindow
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateContact checks a contact about to be created.
//
// Default validated fields: first name, last name, email, phone number,
// birthday and owner.
func (v *ContactValidator) validateContact(_ context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber, FieldBirthday, FieldOwnerID}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(contact.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if isBlank(contact.LastName) {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if isBlank(contact.Email) {
				return ErrEmptyContactEmail
			}
		case FieldPhoneNumber:
			if isBlank(contact.PhoneNumber) {
				return ErrEmptyPhoneNumber
			}
		case FieldBirthday:
			if contact.Birthday.IsZero() {
				return ErrEmptyBirthday
			}
		case FieldOwnerID:
			if contact.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateContactUpdate rejects provided required fields that are blank.
// Omitted fields and an empty AdditionalInfo are fine.
func (v *ContactValidator) validateContactUpdate(_ context.Context, update models.ContactUpdate) error {
	if update.FirstName != nil && isBlank(*update.FirstName) {
		return ErrEmptyFirstName
	}
	if update.LastName != nil && isBlank(*update.LastName) {
		return ErrEmptyLastName
	}
	if update.Email != nil && isBlank(*update.Email) {
		return ErrEmptyContactEmail
	}
	if update.PhoneNumber != nil && isBlank(*update.PhoneNumber) {
		return ErrEmptyPhoneNumber
	}
	if update.Birthday != nil && update.Birthday.IsZero() {
		return ErrEmptyBirthday
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
