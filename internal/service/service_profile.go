package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

type profileService struct {
	userRepository     store.UserRepository
	settingsRepository store.SettingsRepository
}

func NewProfileService(users store.UserRepository, settings store.SettingsRepository) ProfileService {
	return &profileService{userRepository: users, settingsRepository: settings}
}

func (p *profileService) GetProfile(ctx context.Context, principal models.Principal) (models.User, error) {
	user, err := p.userRepository.FindUserByID(ctx, principal.UserID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Public(), nil
}

func (p *profileService) UpdateProfile(ctx context.Context, principal models.Principal, profile models.ProfileUpdate) (models.User, error) {
	if !principal.Can(models.PermissionPortfolioWrite) {
		return models.User{}, ErrPermissionDenied
	}

	user, err := p.userRepository.UpdateProfile(ctx, principal.UserID, profile)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailTaken
	case err != nil:
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Public(), nil
}

func (p *profileService) GetSettings(ctx context.Context, principal models.Principal) (models.PortfolioSettings, error) {
	settings, err := p.settingsRepository.GetSettings(ctx, principal.UserID)
	switch {
	case errors.Is(err, store.ErrSettingsNotFound):
		return models.DefaultSettings(principal.UserID, false), nil
	case err != nil:
		return models.PortfolioSettings{}, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

func (p *profileService) PublicSettings(ctx context.Context, ownerID int64) (models.PortfolioSettings, error) {
	settings, err := p.settingsRepository.GetSettings(ctx, ownerID)
	switch {
	case errors.Is(err, store.ErrSettingsNotFound):
		return models.DefaultSettings(ownerID, false), nil
	case err != nil:
		return models.PortfolioSettings{}, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

func (p *profileService) UpdateSettings(ctx context.Context, principal models.Principal, settings models.PortfolioSettings) (models.PortfolioSettings, error) {
	if !principal.Can(models.PermissionPortfolioWrite) {
		return models.PortfolioSettings{}, ErrPermissionDenied
	}

	settings.UserID = principal.UserID
	saved, err := p.settingsRepository.UpsertSettings(ctx, settings)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.UserID).Msg("settings update failed")
		return models.PortfolioSettings{}, fmt.Errorf("settings update failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", principal.UserID).Bool("is_public", saved.IsPublic).Msg("settings updated")
	return saved, nil
}
