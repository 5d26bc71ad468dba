// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-contact-book/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn         func(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	refreshFn       func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	resolveCallerFn func(ctx context.Context, accessToken string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) ResolveCaller(ctx context.Context, accessToken string) (models.User, error) {
	return m.resolveCallerFn(ctx, accessToken)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	createFn    func(ctx context.Context, owner models.User, contact models.Contact) (models.Contact, error)
	listFn      func(ctx context.Context, owner models.User, page models.Page) ([]models.Contact, error)
	getFn       func(ctx context.Context, owner models.User, contactID int64) (models.Contact, error)
	updateFn    func(ctx context.Context, owner models.User, contactID int64, update models.ContactUpdate) (models.Contact, error)
	deleteFn    func(ctx context.Context, owner models.User, contactID int64) (models.Contact, error)
	searchFn    func(ctx context.Context, owner models.User, filter models.ContactFilter) ([]models.Contact, error)
	birthdaysFn func(ctx context.Context, owner models.User, window models.BirthdayWindow) ([]models.Contact, error)
}

func (m *mockContactService) CreateContact(ctx context.Context, owner models.User, contact models.Contact) (models.Contact, error) {
	return m.createFn(ctx, owner, contact)
}

func (m *mockContactService) ListContacts(ctx context.Context, owner models.User, page models.Page) ([]models.Contact, error) {
	return m.listFn(ctx, owner, page)
}

func (m *mockContactService) GetContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	return m.getFn(ctx, owner, contactID)
}

func (m *mockContactService) UpdateContact(ctx context.Context, owner models.User, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	return m.updateFn(ctx, owner, contactID, update)
}

func (m *mockContactService) DeleteContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	return m.deleteFn(ctx, owner, contactID)
}

func (m *mockContactService) SearchContacts(ctx context.Context, owner models.User, filter models.ContactFilter) ([]models.Contact, error) {
	return m.searchFn(ctx, owner, filter)
}

func (m *mockContactService) UpcomingBirthdays(ctx context.Context, owner models.User, window models.BirthdayWindow) ([]models.Contact, error) {
	return m.birthdaysFn(ctx, owner, window)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
