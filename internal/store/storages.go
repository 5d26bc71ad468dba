// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-contact-book/internal/logger"

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

// NewStorages builds PostgreSQL-backed repositories sharing db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
