// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

// contactService is the core ContactService. It expects validated input;
// see ContactValidationService.
type contactService struct {
	contactRepository store.ContactRepository

	// now is the clock that decides what "today" is for birthday lookups.
	now func() time.Time

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateContact stores contact for owner. Any client-supplied ID or owner is
// overwritten.
func (s *contactService) CreateContact(ctx context.Context, owner models.User, contact models.Contact) (models.Contact, error) {
	contact.ContactID = 0
	contact.OwnerID = owner.UserID

	created, err := s.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error creating contact: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("owner_id", owner.UserID).
		Int64("contact_id", created.ContactID).
		Msg("contact created")
	return created, nil
}

func (s *contactService) ListContacts(ctx context.Context, owner models.User, page models.Page) ([]models.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx, owner.UserID, page)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.GetContact(ctx, owner.UserID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error getting contact: %w", err)
	}
	return contact, nil
}

// UpdateContact writes the provided fields of update. An empty update
// returns the current record untouched.
func (s *contactService) UpdateContact(ctx context.Context, owner models.User, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	if update.IsEmpty() {
		return s.GetContact(ctx, owner, contactID)
	}

	contact, err := s.contactRepository.UpdateContact(ctx, owner.UserID, contactID, update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error updating contact: %w", err)
	}
	return contact, nil
}

// DeleteContact removes the contact and returns its pre-deletion state.
func (s *contactService) DeleteContact(ctx context.Context, owner models.User, contactID int64) (models.Contact, error) {
	contact, err := s.contactRepository.DeleteContact(ctx, owner.UserID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("error deleting contact: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("owner_id", owner.UserID).
		Int64("contact_id", contactID).
		Msg("contact deleted")
	return contact, nil
}

func (s *contactService) SearchContacts(ctx context.Context, owner models.User, filter models.ContactFilter) ([]models.Contact, error) {
	contacts, err := s.contactRepository.SearchContacts(ctx, owner.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("error searching contacts: %w", err)
	}
	return contacts, nil
}

// UpcomingBirthdays returns owner's contacts whose next birthday falls within
// window days from today (inclusive), nearest first. Birth years are ignored
// and the window may cross the new year.
func (s *contactService) UpcomingBirthdays(ctx context.Context, owner models.User, window models.BirthdayWindow) ([]models.Contact, error) {
	today := models.DateOf(s.now())

	contacts, err := s.contactRepository.FindContactsByBirthdays(ctx, owner.UserID, birthdayKeys(today, window))
	if err != nil {
		return nil, fmt.Errorf("error finding upcoming birthdays: %w", err)
	}

	upcoming := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if daysUntilBirthday(today, contact.Birthday) <= int(window) {
			upcoming = append(upcoming, contact)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b models.Contact) int {
		return cmp.Or(
			cmp.Compare(daysUntilBirthday(today, a.Birthday), daysUntilBirthday(today, b.Birthday)),
			cmp.Compare(a.ContactID, b.ContactID),
		)
	})

	return upcoming, nil
}

const monthDayLayout = "01-02"

// birthdayKeys lists the "MM-DD" keys of every day in [today, today+window].
// In non-leap years Feb 28 also stands for Feb 29.
func birthdayKeys(today models.Date, window models.BirthdayWindow) []string {
	seen := make(map[string]struct{}, int(window)+2)
	keys := make([]string, 0, int(window)+2)

	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	for i := 0; i <= int(window); i++ {
		day := today.AddDays(i)
		add(day.Format(monthDayLayout))
		if day.Month() == time.February && day.Day() == 28 && !isLeapYear(day.Year()) {
			add("02-29")
		}
	}

	return keys
}

// daysUntilBirthday counts the days from today to the next occurrence of
// birthday, 0 if it is today.
func daysUntilBirthday(today, birthday models.Date) int {
	next := birthdayIn(today.Year(), birthday)
	if next.Before(today.Time) {
		next = birthdayIn(today.Year()+1, birthday)
	}
	return int(next.Sub(today.Time).Hours() / 24)
}

// birthdayIn is the date birthday is celebrated in year. Feb 29 maps to
// Feb 28 in non-leap years.
func birthdayIn(year int, birthday models.Date) models.Date {
	if birthday.Month() == time.February && birthday.Day() == 29 && !isLeapYear(year) {
		return models.NewDate(year, time.February, 28)
	}
	return models.NewDate(year, birthday.Month(), birthday.Day())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
