package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResolver(t *testing.T) (VisibilityResolver, *mock.MockUserRepository, *mock.MockSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	settings := mock.NewMockSettingsRepository(ctrl)
	return NewVisibilityResolver(users, settings), users, settings
}

func TestIsPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row is private", func(t *testing.T) {
		r, _, settings := newTestResolver(t)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.PortfolioSettings{}, store.ErrSettingsNotFound)

		public, err := r.IsPublic(ctx, 1)
		require.NoError(t, err)
		assert.False(t, public)
	})

	t.Run("flag is returned", func(t *testing.T) {
		r, _, settings := newTestResolver(t)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.DefaultSettings(1, true), nil)
		settings.EXPECT().GetSettings(ctx, int64(2)).Return(models.DefaultSettings(2, false), nil)

		public, err := r.IsPublic(ctx, 1)
		require.NoError(t, err)
		assert.True(t, public)

		public, err = r.IsPublic(ctx, 2)
		require.NoError(t, err)
		assert.False(t, public)
	})

	t.Run("storage error", func(t *testing.T) {
		r, _, settings := newTestResolver(t)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.PortfolioSettings{}, store.ErrExecutingQuery)

		public, err := r.IsPublic(ctx, 1)
		require.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.False(t, public)
	})
}

func TestAuthorizeForPublicRead(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		r, users, _ := newTestResolver(t)
		users.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

		_, err := r.AuthorizeForPublicRead(ctx, "ghost")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("private portfolio", func(t *testing.T) {
		r, users, settings := newTestResolver(t)
		users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{ID: 1, Username: "alice"}, nil)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.DefaultSettings(1, false), nil)

		_, err := r.AuthorizeForPublicRead(ctx, "alice")
		require.ErrorIs(t, err, ErrPortfolioPrivate)
	})

	t.Run("missing settings is private", func(t *testing.T) {
		r, users, settings := newTestResolver(t)
		users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{ID: 1, Username: "alice"}, nil)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.PortfolioSettings{}, store.ErrSettingsNotFound)

		_, err := r.AuthorizeForPublicRead(ctx, "alice")
		require.ErrorIs(t, err, ErrPortfolioPrivate)
	})

	t.Run("public portfolio", func(t *testing.T) {
		r, users, settings := newTestResolver(t)
		users.EXPECT().FindUserByUsername(ctx, "alice").
			Return(models.User{ID: 1, Username: "alice", PasswordHash: "hash"}, nil)
		settings.EXPECT().GetSettings(ctx, int64(1)).Return(models.DefaultSettings(1, true), nil)

		u, err := r.AuthorizeForPublicRead(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.Empty(t, u.PasswordHash)
	})
}
