// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the posts server REST API.
//
// [PostsAPI] hides the transport from its callers. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError, so callers
// match them with [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

// PostsAPI talks to a running posts server. Implementations attach the
// bearer token set via SetToken to every protected request.
type PostsAPI interface {
	// SetToken stores the bearer token of subsequent protected requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost returns [ErrNotFound] (wrapped) for an unknown id.
	GetPost(ctx context.Context, id string) (models.Post, error)

	// CreatePost returns the created post and its Location.
	CreatePost(ctx context.Context, in models.PostInput) (models.Post, string, error)

	// UpdatePost replaces the post with id. Unknown ids give [ErrNotFound].
	UpdatePost(ctx context.Context, id string, in models.PostInput) (models.Post, error)

	DeletePost(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (models.User, string, error)

	// Version returns the plain text version reported by the server.
	Version(ctx context.Context) (string, error)
}
