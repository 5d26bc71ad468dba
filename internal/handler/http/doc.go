// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the contact book.
//
// It wires the chi router, the request handlers and the middleware chain
// (trace ids, access logging, gzip, bearer authentication) in front of the
// service layer, and maps service and store errors to status codes.
package http
