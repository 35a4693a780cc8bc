package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// visibilityResolver is fail-closed: a portfolio without a settings row is
// private.
type visibilityResolver struct {
	userRepository     store.UserRepository
	settingsRepository store.SettingsRepository
}

func NewVisibilityResolver(users store.UserRepository, settings store.SettingsRepository) VisibilityResolver {
	return &visibilityResolver{userRepository: users, settingsRepository: settings}
}

func (v *visibilityResolver) IsPublic(ctx context.Context, userID int64) (bool, error) {
	settings, err := v.settingsRepository.GetSettings(ctx, userID)
	switch {
	case errors.Is(err, store.ErrSettingsNotFound):
		logger.FromContext(ctx).Debug().Int64("user_id", userID).Msg("no settings row, treating portfolio as private")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings.IsPublic, nil
}

func (v *visibilityResolver) AuthorizeForPublicRead(ctx context.Context, username string) (models.User, error) {
	user, err := v.userRepository.FindUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	public, err := v.IsPublic(ctx, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if !public {
		return models.User{}, ErrPortfolioPrivate
	}

	return user.Public(), nil
}
