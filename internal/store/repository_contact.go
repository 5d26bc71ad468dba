// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. Queries are built with squirrel; every statement
// filters on owner_id.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ContactID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.PhoneNumber,
		&contact.Birthday,
		&contact.AdditionalInfo,
		&contact.OwnerID,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	return contact, err
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query, args, err := buildInsertContactQuery(contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "contactRepository.CreateContact", contact.OwnerID, query, args)
}

func (r *contactRepository) ListContacts(ctx context.Context, ownerID int64, page models.Page) ([]models.Contact, error) {
	query, args, err := buildListContactsQuery(ownerID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "contactRepository.ListContacts", ownerID, query, args)
}

func (r *contactRepository) GetContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	query, args, err := buildGetContactQuery(ownerID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "contactRepository.GetContact", ownerID, query, args)
}

// UpdateContact applies update in a single UPDATE ... RETURNING statement.
func (r *contactRepository) UpdateContact(ctx context.Context, ownerID, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	query, args, err := buildUpdateContactQuery(ownerID, contactID, update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "contactRepository.UpdateContact", ownerID, query, args)
}

// DeleteContact removes the contact and returns its last state.
func (r *contactRepository) DeleteContact(ctx context.Context, ownerID, contactID int64) (models.Contact, error) {
	query, args, err := buildDeleteContactQuery(ownerID, contactID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "contactRepository.DeleteContact", ownerID, query, args)
}

func (r *contactRepository) SearchContacts(ctx context.Context, ownerID int64, filter models.ContactFilter) ([]models.Contact, error) {
	query, args, err := buildSearchContactsQuery(ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "contactRepository.SearchContacts", ownerID, query, args)
}

func (r *contactRepository) FindContactsByBirthdays(ctx context.Context, ownerID int64, monthDays []string) ([]models.Contact, error) {
	if len(monthDays) == 0 {
		return []models.Contact{}, nil
	}

	query, args, err := buildBirthdaysQuery(ownerID, monthDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryMany(ctx, "contactRepository.FindContactsByBirthdays", ownerID, query, args)
}

// queryOne runs a statement returning at most one contact row.
// No row means [ErrContactNotFound].
func (r *contactRepository) queryOne(ctx context.Context, funcName string, ownerID int64, query string, args []any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return contact, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Contact{}, ErrContactNotFound
	default:
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("failed to execute contact query")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storageError(err))
	}
}

func (r *contactRepository) queryMany(ctx context.Context, funcName string, ownerID int64, query string, args []any) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("failed to execute contacts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.storageError(err))
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("owner_id", ownerID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("error iterating contact rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.storageError(err))
	}

	return contacts, nil
}
