// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// posts server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses a required field.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when a provider reports a backend
	// fault. No detail is disclosed.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is the single body of every rejection by the
	// authorization gate, whatever the cause.
	MsgUnauthorized = "Unauthorized"
)
