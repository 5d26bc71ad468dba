// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
)

// buildInfoService reports the release the contact book was built from.
type buildInfoService struct {
	release string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version, so the server never starts without one to report on /version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	release := strings.TrimSpace(cfg.Version)
	if release == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("release", release).Msg("contact book release registered")
	return &buildInfoService{release: release}, nil
}

func (s *buildInfoService) GetAppVersion(context.Context) string {
	return s.release
}
