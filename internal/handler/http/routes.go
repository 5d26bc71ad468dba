// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every contact book route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Get("/version", h.getServerVersion)
	})

	router.Route("/contacts", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createContact)
		r.Get("/", h.listContacts)
		r.Get("/search", h.searchContacts)
		r.Get("/birthdays/upcoming", h.upcomingBirthdays)

		r.Get("/{id}", h.getContact)
		r.Put("/{id}", h.updateContact)
		r.Delete("/{id}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
