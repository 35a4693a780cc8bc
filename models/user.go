// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account together with its public profile fields.
type User struct {
	// ID is the internal identifier. It is the owner id of every per-user
	// resource.
	ID int64 `json:"id"`

	// Username is unique and doubles as the public portfolio address and
	// the token subject.
	Username string `json:"username"`

	Email string `json:"email"`

	// Password is only read from registration payloads and never written back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	JobTitle     string `json:"job_title"`
	Location     string `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns a copy of u safe to serialize to any caller.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate carries the owner-editable profile fields. Username and
// password are not editable through the profile surface.
type ProfileUpdate struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	JobTitle     string `json:"job_title"`
	Location     string `json:"location"`
}
