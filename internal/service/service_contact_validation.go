// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/validators"
	"github.com/MKhiriev/go-contact-book/models"
)

// ContactValidationService rejects invalid input with ErrInvalidDataProvided
// before it reaches the wrapped ContactService.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

func (v *ContactValidationService) CreateContact(ctx context.Context, owner models.User, contact models.Contact) (models.Contact, error) {
	contact.OwnerID = owner.UserID
	if err := v.validate(ctx, contact); err != nil {
		return models.Contact{}, err
	}

	return v.inner.CreateContact(ctx, owner, contact)
}

func (v *ContactValidationService) ListContacts(ctx context.Context, owner models.User, page models.Page) ([]models.Contact, error) {
	if err := v.validate(ctx, page); err != nil {
		return nil, err
	}

	return v.inner.ListContacts(ctx, owner, page)
}

func (v *ContactValidationService) GetContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	return v.inner.GetContact(ctx, owner, contactID)
}

func (v *ContactValidationService) UpdateContact(ctx context.Context, owner models.User, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if err := v.validate(ctx, update); err != nil {
		return models.Contact{}, err
	}

	return v.inner.UpdateContact(ctx, owner, contactID, update)
}

func (v *ContactValidationService) DeleteContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	return v.inner.DeleteContact(ctx, owner, contactID)
}

func (v *ContactValidationService) SearchContacts(ctx context.Context, owner models.User, filter models.ContactFilter) ([]models.Contact, error) {
	return v.inner.SearchContacts(ctx, owner, filter)
}

func (v *ContactValidationService) UpcomingBirthdays(ctx context.Context, owner models.User, window models.BirthdayWindow) ([]models.Contact, error) {
	if err := v.validate(ctx, window); err != nil {
		return nil, err
	}

	return v.inner.UpcomingBirthdays(ctx, owner, window)
}

func (v *ContactValidationService) Wrap(wrapped ContactService) ContactService {
	v.inner = wrapped
	return v
}

func (v *ContactValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("contact validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
