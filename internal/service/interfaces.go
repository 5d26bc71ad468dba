// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	IssueAccessToken(ctx context.Context, subject string) (models.Token, error)
	IssueRefreshToken(ctx context.Context, subject string) (models.Token, error)
	// Validate returns the subject of a valid token of the given type.
	// Every failure is reported as ErrTokenIsExpiredOrInvalid.
	Validate(ctx context.Context, tokenString string, tokenType models.TokenType) (string, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ResolveCaller(ctx context.Context, accessToken string) (models.User, error)
}

// ContactService manages the contacts of one owner. The owner is always
// passed explicitly and every operation is restricted to that owner's
// contacts.
type ContactService interface {
	CreateContact(ctx context.Context, owner models.User, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, owner models.User, page models.Page) ([]models.Contact, error)
	GetContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, owner models.User, contactID int64, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error)
	SearchContacts(ctx context.Context, owner models.User, filter models.ContactFilter) ([]models.Contact, error)
	UpcomingBirthdays(ctx context.Context, owner models.User, window models.BirthdayWindow) ([]models.Contact, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ContactServiceWrapper defines middleware composition for ContactService.
// Implementations wrap an existing ContactService to add behavior such as
// logging or validating.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService // returns a decorated ContactService applying additional behavior
}
