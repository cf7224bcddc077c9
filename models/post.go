// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single published message of the posts resource group.
//
// Posts are created only by a posts provider: the provider allocates ID and
// builds the Post from a [PostInput]. ID never changes after creation; every
// other field is replaced wholesale on update.
type Post struct {
	// ID is the opaque unique identifier assigned by the provider.
	ID string `json:"id"`

	// Author is the display name of whoever wrote the post.
	Author string `json:"author"`

	// Content is the body of the post.
	Content string `json:"content"`

	// Date is the caller-supplied publication time.
	// Serialized as RFC 3339.
	Date time.Time `json:"date"`
}

// PostInput is a Post without its identifier. Callers supply it on create
// and on update.
type PostInput struct {
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// NewPost builds a Post with the given id from in.
func NewPost(id string, in PostInput) Post {
	return Post{
		ID:      id,
		Author:  in.Author,
		Content: in.Content,
		Date:    in.Date,
	}
}

// Input strips the identifier from p.
func (p Post) Input() PostInput {
	return PostInput{
		Author:  p.Author,
		Content: p.Content,
		Date:    p.Date,
	}
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
