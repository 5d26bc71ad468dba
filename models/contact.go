// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is a single address book entry. Every contact belongs to exactly
// one user (OwnerID) for its whole lifetime.
type Contact struct {
	ContactID      int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Birthday       Date      `json:"birthday"`
	AdditionalInfo *string   `json:"additional_info"`
	OwnerID        int64     `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate describes a partial update of a contact.
//
// A nil field means "not provided" and leaves the stored value untouched.
// A non-nil field is written as is, so an empty AdditionalInfo clears the note.
type ContactUpdate struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Birthday       *Date   `json:"birthday,omitempty"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}

// IsEmpty reports whether no field of the update was provided.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.Email == nil &&
		u.PhoneNumber == nil &&
		u.Birthday == nil &&
		u.AdditionalInfo == nil
}

// ContactFilter holds optional case-insensitive substring filters for
// contact search. Empty fields do not restrict the result.
type ContactFilter struct {
	// Name matches either the first or the last name.
	Name      string
	FirstName string
	LastName  string
	Email     string
}

// Page is an offset/limit window over a list of contacts.
type Page struct {
	Offset uint64
	Limit  uint64
}

// Paging limits for contact lists.
const (
	DefaultPageLimit uint64 = 100
	MaxPageLimit     uint64 = 100
)

// BirthdayWindow is the number of days after today scanned for upcoming
// birthdays. Today itself is always included.
type BirthdayWindow int

const (
	DefaultBirthdayWindow BirthdayWindow = 7
	MaxBirthdayWindow     BirthdayWindow = 366
)
