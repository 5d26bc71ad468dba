// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/utils"
	"github.com/MKhiriev/go-contact-book/models"
	"github.com/go-chi/chi/v5"
)

const contactDeletedMessage = "Contact deleted successfully"

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var contact models.Contact
	if err := utils.DecodeJSON(r, &contact); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	created, err := h.services.ContactService.CreateContact(r.Context(), caller, contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	offset, err := uintQueryParam(r, "offset", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := uintQueryParam(r, "limit", models.DefaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), caller, models.Page{Offset: offset, Limit: limit})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	contactID, err := contactIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), caller, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	contactID, err := contactIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ContactUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), caller, contactID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	contactID, err := contactIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.DeleteContact(r.Context(), caller, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteContactResponse{Message: contactDeletedMessage, Contact: contact}, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.ContactFilter{
		Name:      query.Get("name"),
		FirstName: query.Get("first_name"),
		LastName:  query.Get("last_name"),
		Email:     query.Get("email"),
	}

	contacts, err := h.services.ContactService.SearchContacts(r.Context(), caller, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) upcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	window := models.DefaultBirthdayWindow
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: days: %w", ErrInvalidQueryParameter, err))
			return
		}
		window = models.BirthdayWindow(days)
	}

	contacts, err := h.services.ContactService.UpcomingBirthdays(r.Context(), caller, window)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

// callerFromRequest returns the user the auth middleware resolved. It writes
// the error response itself when there is none.
func callerFromRequest(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	caller, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoCallerInContext)
		return models.User{}, false
	}

	logger.FromRequest(r).Debug().Int64("caller_id", caller.UserID).Send()
	return caller, true
}

func contactIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	contactID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || contactID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidContactID, raw)
	}
	return contactID, nil
}

// uintQueryParam parses the named query parameter, falling back to def when
// it is absent. Negative numbers and values above math.MaxInt64 are rejected.
func uintQueryParam(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	// SQL paging clauses are bigint
	value, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return value, nil
}
