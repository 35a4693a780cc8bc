package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a SettingsRepository over the
// "portfolio_settings" table.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{db: db, logger: logger}
}

func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.PortfolioSettings, error) {
	var s models.PortfolioSettings
	err := scanSettings(r.db.QueryRowContext(ctx, getSettings, userID), &s)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PortfolioSettings{}, ErrSettingsNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.GetSettings").Int64("user_id", userID).Msg("failed to read settings")
		return models.PortfolioSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *settingsRepository) UpsertSettings(ctx context.Context, in models.PortfolioSettings) (models.PortfolioSettings, error) {
	var s models.PortfolioSettings
	row := r.db.QueryRowContext(ctx, upsertSettings, in.UserID, in.Theme, in.Layout, in.ColorPrimary,
		in.ColorSecondary, in.FontFamily, in.IsPublic)
	if err := scanSettings(row, &s); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "settingsRepository.UpsertSettings").Int64("user_id", in.UserID).Msg("failed to upsert settings")
		return models.PortfolioSettings{}, classifyWriteError(err)
	}

	return s, nil
}

func scanSettings(row *sql.Row, s *models.PortfolioSettings) error {
	return row.Scan(&s.UserID, &s.Theme, &s.Layout, &s.ColorPrimary, &s.ColorSecondary, &s.FontFamily, &s.IsPublic, &s.UpdatedAt)
}
