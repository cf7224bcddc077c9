// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, identifier
// generation, HTTP response writing, HTTP client initialization and JWT
// token validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the trace middleware stores the
// request's trace identifier.
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "3f1c...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the trace identifier from the context.
//
// ok is false when the value is missing or is not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
