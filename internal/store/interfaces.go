// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ContactRepository persists contacts. Every method is scoped to ownerID:
// a contact that exists but belongs to another user is reported exactly
// like a missing one.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, ownerID int64, page models.Page) ([]models.Contact, error)
	GetContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error)
	SearchContacts(ctx context.Context, ownerID int64, filter models.ContactFilter) ([]models.Contact, error)
	// FindContactsByBirthdays returns contacts whose birthday falls on one of
	// the given month-day keys ("MM-DD").
	FindContactsByBirthdays(ctx context.Context, ownerID int64, monthDays []string) ([]models.Contact, error)
}
