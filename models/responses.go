// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeleteContactResponse confirms a deletion and carries the removed record.
type DeleteContactResponse struct {
	Message string  `json:"message"`
	Contact Contact `json:"contact"`
}
