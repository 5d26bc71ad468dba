// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-contact-book/internal/logger"
)

// getServerVersion answers GET /version with the release string as plain text.
// The route is public so clients can probe the server before logging in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	release := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, release); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("version response not delivered")
	}
}
