// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo describes the running binary.
type AppBuildInfo struct {
	BuildVersion string
	BuildDate    string
	BuildCommit  string
}
