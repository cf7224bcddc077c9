// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization gate. They are logged, never
// sent to the client.
var (
	// ErrEmptyAuthorizationHeader means the request has no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header does not start with
	// the "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the header carries the scheme prefix but no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTokenRejected means the users provider reported the token invalid.
	ErrTokenRejected = errors.New("token rejected by users provider")
)

// ErrInvalidBody is returned when a request body cannot be read, is not
// JSON, or lacks a required field.
var ErrInvalidBody = errors.New("invalid request body")
