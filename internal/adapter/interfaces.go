// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the portfolio API.
//
// [ServerAdapter] hides the transport from the CLI. Non-2xx responses are
// mapped to the sentinel errors of this package, so callers can use
// [errors.Is] (e.g. [ErrForbidden] for a private portfolio).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter talks to the portfolio API on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Register creates an account. It does not sign the user in.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Me returns the account of the stored token.
	Me(ctx context.Context) (models.User, error)

	// Portfolio reads the public portfolio root of username.
	Portfolio(ctx context.Context, username string) (models.PublicPortfolio, error)

	// Projects reads the public projects of username.
	Projects(ctx context.Context, username string) ([]models.Project, error)

	// Skills reads the skill catalog, optionally filtered by category.
	Skills(ctx context.Context, category string) ([]models.Skill, error)
}
