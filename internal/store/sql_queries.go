// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-contact-book/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

const contactsTable = "contacts"

// contactColumns is the column order every contact query returns and
// [scanContact] expects.
var contactColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"birthday",
	"additional_info",
	"owner_id",
	"created_at",
	"updated_at",
}

// birthdayKey renders the month and day of a DATE column as "MM-DD".
const birthdayKey = "to_char(birthday, 'MM-DD')"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningContact() string {
	return "RETURNING " + strings.Join(contactColumns, ", ")
}

func ownedContact(ownerID, contactID int64) sq.And {
	return sq.And{
		sq.Eq{"id": contactID},
		sq.Eq{"owner_id": ownerID},
	}
}

// noteValue maps a missing or empty note to NULL.
func noteValue(note *string) any {
	if note == nil || *note == "" {
		return nil
	}
	return *note
}

func buildInsertContactQuery(contact models.Contact) (string, []any, error) {
	return psql.
		Insert(contactsTable).
		Columns("first_name", "last_name", "email", "phone_number", "birthday", "additional_info", "owner_id").
		Values(
			contact.FirstName,
			contact.LastName,
			contact.Email,
			contact.PhoneNumber,
			contact.Birthday,
			noteValue(contact.AdditionalInfo),
			contact.OwnerID,
		).
		Suffix(returningContact()).
		ToSql()
}

func buildListContactsQuery(ownerID int64, page models.Page) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func buildGetContactQuery(ownerID, contactID int64) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(ownedContact(ownerID, contactID)).
		ToSql()
}

// buildUpdateContactQuery writes only the provided fields of update.
// An empty AdditionalInfo clears the note.
func buildUpdateContactQuery(ownerID, contactID int64, update models.ContactUpdate) (string, []any, error) {
	builder := psql.Update(contactsTable)

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PhoneNumber != nil {
		builder = builder.Set("phone_number", *update.PhoneNumber)
	}
	if update.Birthday != nil {
		builder = builder.Set("birthday", *update.Birthday)
	}
	if update.AdditionalInfo != nil {
		builder = builder.Set("additional_info", noteValue(update.AdditionalInfo))
	}

	return builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(ownedContact(ownerID, contactID)).
		Suffix(returningContact()).
		ToSql()
}

func buildDeleteContactQuery(ownerID, contactID int64) (string, []any, error) {
	return psql.
		Delete(contactsTable).
		Where(ownedContact(ownerID, contactID)).
		Suffix(returningContact()).
		ToSql()
}

// buildSearchContactsQuery combines every non-empty filter with AND.
// Name matches either first or last name.
func buildSearchContactsQuery(ownerID int64, filter models.ContactFilter) (string, []any, error) {
	where := sq.And{sq.Eq{"owner_id": ownerID}}

	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		where = append(where, sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}
	if filter.FirstName != "" {
		where = append(where, sq.ILike{"first_name": containsPattern(filter.FirstName)})
	}
	if filter.LastName != "" {
		where = append(where, sq.ILike{"last_name": containsPattern(filter.LastName)})
	}
	if filter.Email != "" {
		where = append(where, sq.ILike{"email": containsPattern(filter.Email)})
	}

	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

func buildBirthdaysQuery(ownerID int64, monthDays []string) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From(contactsTable).
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.Eq{birthdayKey: monthDays},
		}).
		OrderBy("id").
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching s literally as a
// substring. Backslash is the default LIKE escape character in PostgreSQL.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
