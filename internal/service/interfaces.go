// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the authentication and authorization policy of the
// portfolio API together with the business operations built on it.
//
// Identity is carried explicitly: every operation that acts for a caller
// receives the request's models.Principal as an argument. Nothing in this
// package stores per-request state.
package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenCodec issues and validates stateless identity tokens.
type TokenCodec interface {
	// Issue signs a token for subject that expires after the configured
	// lifetime.
	Issue(subject string) (models.Token, error)

	// Validate verifies the signature before trusting any claim, then checks
	// expiry and issuer, and returns the subject. Failures wrap exactly one
	// of ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
	Validate(token string) (string, error)
}

// AuthService manages accounts and turns tokens into principals.
type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login returns ErrInvalidCredentials for an unknown user and for a
	// wrong password alike.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// ResolvePrincipal validates rawToken and only then looks up its
	// subject. A subject without a user yields ErrUnknownSubject.
	ResolvePrincipal(ctx context.Context, rawToken string) (models.Principal, error)

	Me(ctx context.Context, principal models.Principal) (models.User, error)
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	AuthService
	Wrap(AuthService) AuthService
}

// VisibilityResolver decides whether a portfolio may be read by callers
// other than its owner.
type VisibilityResolver interface {
	// IsPublic reports false when userID has no settings row.
	IsPublic(ctx context.Context, userID int64) (bool, error)

	// AuthorizeForPublicRead resolves username and requires its portfolio to
	// be public. It fails with ErrUserNotFound or ErrPortfolioPrivate.
	AuthorizeForPublicRead(ctx context.Context, username string) (models.User, error)
}

// OwnershipGuard authorizes access to one owned resource for its owner.
type OwnershipGuard[T models.OwnedResource] interface {
	// AuthorizeForOwner returns the resource when principal owns it, and
	// ErrNotFoundOrUnauthorized when it is absent or owned by someone else.
	AuthorizeForOwner(ctx context.Context, id int64, principal models.Principal) (T, error)
}

// ResourceService is the owner and public surface of one owned resource
// kind. Update and Delete are atomic with respect to the ownership check.
type ResourceService[T models.OwnedResource] interface {
	OwnershipGuard[T]

	List(ctx context.Context, principal models.Principal) ([]T, error)
	Create(ctx context.Context, principal models.Principal, item T) (T, error)
	Update(ctx context.Context, principal models.Principal, id int64, item T) (T, error)
	Delete(ctx context.Context, principal models.Principal, id int64) error

	// ListPublic returns the publicly visible rows of ownerID. Callers must
	// authorize the read with VisibilityResolver first.
	ListPublic(ctx context.Context, ownerID int64) ([]T, error)
}

// ResourceServiceWrapper decorates a ResourceService.
type ResourceServiceWrapper[T models.OwnedResource] interface {
	ResourceService[T]
	Wrap(ResourceService[T]) ResourceService[T]
}

// ProfileService manages the caller's own profile and settings.
type ProfileService interface {
	GetProfile(ctx context.Context, principal models.Principal) (models.User, error)
	UpdateProfile(ctx context.Context, principal models.Principal, profile models.ProfileUpdate) (models.User, error)

	// GetSettings returns private defaults, without storing them, when the
	// caller has no settings row.
	GetSettings(ctx context.Context, principal models.Principal) (models.PortfolioSettings, error)
	UpdateSettings(ctx context.Context, principal models.Principal, settings models.PortfolioSettings) (models.PortfolioSettings, error)

	// PublicSettings returns the settings shown on a public portfolio.
	// Callers must authorize the read with VisibilityResolver first.
	PublicSettings(ctx context.Context, ownerID int64) (models.PortfolioSettings, error)
}

// ProfileServiceWrapper decorates a ProfileService.
type ProfileServiceWrapper interface {
	ProfileService
	Wrap(ProfileService) ProfileService
}

// SkillService reads the shared skill catalog.
type SkillService interface {
	List(ctx context.Context, category string) ([]models.Skill, error)
	Get(ctx context.Context, id int64) (models.Skill, error)
}

// LoginLimiter throttles failed logins per key.
type LoginLimiter interface {
	// Allow reports whether key may attempt a login now.
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
