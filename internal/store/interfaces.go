// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements PostgreSQL persistence for users, portfolio
// settings, the skill catalog and the six kinds of owned portfolio resources.
package store

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their profile fields.
type UserRepository interface {
	// CreateUser inserts user and its settings row in one transaction and
	// returns the stored user.
	CreateUser(ctx context.Context, user models.User, settings models.PortfolioSettings) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, profile models.ProfileUpdate) (models.User, error)
}

// SettingsRepository persists the one-per-user portfolio settings row.
type SettingsRepository interface {
	// GetSettings returns ErrSettingsNotFound when the user has no row.
	GetSettings(ctx context.Context, userID int64) (models.PortfolioSettings, error)
	UpsertSettings(ctx context.Context, settings models.PortfolioSettings) (models.PortfolioSettings, error)
}

// SkillRepository reads the shared skill catalog.
type SkillRepository interface {
	ListSkills(ctx context.Context, category string) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int64) (models.Skill, error)
}

// OwnedRepository is the storage contract shared by every owned resource
// kind. Update and Delete are single statements filtered on both the
// resource id and the owner id, and report ErrNotFoundOrUnauthorized when no
// row matched.
type OwnedRepository[T models.OwnedResource] interface {
	Create(ctx context.Context, ownerID int64, item T) (T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	ListByOwner(ctx context.Context, ownerID int64, visibleOnly bool) ([]T, error)
	UpdateOwned(ctx context.Context, id, ownerID int64, item T) (T, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}
