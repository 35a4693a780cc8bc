package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsRowColumns = []string{"user_id", "theme", "layout", "color_primary", "color_secondary", "font_family", "is_public", "updated_at"}

func settingsRow(s models.PortfolioSettings) *sqlmock.Rows {
	return sqlmock.NewRows(settingsRowColumns).
		AddRow(s.UserID, s.Theme, s.Layout, s.ColorPrimary, s.ColorSecondary, s.FontFamily, s.IsPublic, time.Now())
}

func TestGetSettings(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock)
		wantPublic bool
		wantErr    error
	}{
		{
			name: "row present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM portfolio_settings").WithArgs(int64(1)).
					WillReturnRows(settingsRow(models.DefaultSettings(1, true)))
			},
			wantPublic: true,
		},
		{
			name: "row missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM portfolio_settings").WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrSettingsNotFound,
		},
		{
			name: "store failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM portfolio_settings").WithArgs(int64(1)).WillReturnError(errors.New("down"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewSettingsRepository(db, logger.Nop())
			tt.setup(mock)

			s, err := repo.GetSettings(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPublic, s.IsPublic)
		})
	}
}

func TestUpsertSettings(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	in := models.DefaultSettings(4, false)
	in.Theme = "dark"
	mock.ExpectQuery("INSERT INTO portfolio_settings (.+) ON CONFLICT").
		WithArgs(in.UserID, in.Theme, in.Layout, in.ColorPrimary, in.ColorSecondary, in.FontFamily, in.IsPublic).
		WillReturnRows(settingsRow(in))

	out, err := repo.UpsertSettings(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "dark", out.Theme)
	assert.False(t, out.IsPublic)
	assert.NoError(t, mock.ExpectationsWereMet())
}
