// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account of the users resource group.
// It carries identity attributes only; no credentials are stored.
type User struct {
	// ID is the opaque unique identifier assigned by the provider.
	ID string `json:"id"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Nickname is the public display name.
	Nickname string `json:"nickname"`
}

// UserInput is a User without its identifier, supplied on create.
type UserInput struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// NewUser builds a User with the given id from in.
func NewUser(id string, in UserInput) User {
	return User{
		ID:       id,
		Email:    in.Email,
		Nickname: in.Nickname,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
