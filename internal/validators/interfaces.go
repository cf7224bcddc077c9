// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides structural validation of request bodies.
//
// Core concepts:
//   - Validator: generic interface to validate a decoded JSON document
//     against one or more named schemas.
//
// Only field presence and JSON types are checked. Business rules are out of
// scope.
package validators

import "context"

// Validator checks a decoded JSON document.
type Validator interface {

	// Validate checks doc against every named schema.
	Validate(ctx context.Context, doc any, schemas ...string) error
}
