// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrContactNotFound:    http.StatusNotFound,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,

	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrInvalidContactID:           http.StatusBadRequest,
	ErrInvalidQueryParameter:      http.StatusBadRequest,
	utils.ErrEmptyBody:            http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
}

// classifyError returns the sentinel err matches and its status.
// Unknown errors yield a nil sentinel and 500.
func classifyError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := classifyError(err)
	return status
}

// writeError responds with the status err maps to.
//
// Bad requests echo err so the client sees which field was rejected, other
// client errors only name the sentinel, and server errors are opaque.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	target, status := classifyError(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
	case status == http.StatusBadRequest:
		log.Info().Err(err).Int("status", status).Msg("bad request")
		http.Error(w, err.Error(), status)
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		http.Error(w, target.Error(), status)
	}
}
