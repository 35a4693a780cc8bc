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

func newTestProfileSvc(t *testing.T) (ProfileService, *mock.MockUserRepository, *mock.MockSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	settings := mock.NewMockSettingsRepository(ctrl)
	return NewProfileService(users, settings), users, settings
}

func TestGetSettings_MissingRowReturnsPrivateDefaults(t *testing.T) {
	svc, _, settings := newTestProfileSvc(t)
	settings.EXPECT().GetSettings(gomock.Any(), alice.UserID).Return(models.PortfolioSettings{}, store.ErrSettingsNotFound)
	// no UpsertSettings expectation: defaults must not be persisted

	got, err := svc.GetSettings(context.Background(), alice)
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
	assert.Equal(t, alice.UserID, got.UserID)
	assert.Equal(t, "#007bff", got.ColorPrimary)
}

func TestUpdateSettings_ForcesOwner(t *testing.T) {
	svc, _, settings := newTestProfileSvc(t)

	in := models.DefaultSettings(99, false)
	settings.EXPECT().UpsertSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.PortfolioSettings) (models.PortfolioSettings, error) {
			assert.Equal(t, alice.UserID, s.UserID)
			return s, nil
		})

	got, err := svc.UpdateSettings(context.Background(), alice, in)
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.UserID)
}

func TestUpdateProfile(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	ctx := context.Background()
	update := models.ProfileUpdate{Email: "a@example.com", JobTitle: "Engineer"}

	users.EXPECT().UpdateProfile(ctx, alice.UserID, update).
		Return(models.User{ID: 1, Email: "a@example.com", JobTitle: "Engineer", PasswordHash: "hash"}, nil)
	got, err := svc.UpdateProfile(ctx, alice, update)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.JobTitle)
	assert.Empty(t, got.PasswordHash)

	users.EXPECT().UpdateProfile(ctx, alice.UserID, update).Return(models.User{}, store.ErrEmailAlreadyExists)
	_, err = svc.UpdateProfile(ctx, alice, update)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetProfile(t *testing.T) {
	svc, users, _ := newTestProfileSvc(t)
	users.EXPECT().FindUserByID(gomock.Any(), alice.UserID).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), alice)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSkillService(t *testing.T) {
	ctrl := gomock.NewController(t)
	skills := mock.NewMockSkillRepository(ctrl)
	svc := NewSkillService(skills)
	ctx := context.Background()

	skills.EXPECT().ListSkills(ctx, "backend").Return([]models.Skill{{ID: 1, Name: "Go", Category: "backend"}}, nil)
	got, err := svc.List(ctx, "backend")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	skills.EXPECT().GetSkill(ctx, int64(404)).Return(models.Skill{}, store.ErrSkillNotFound)
	_, err = svc.Get(ctx, 404)
	require.ErrorIs(t, err, ErrSkillNotFound)
}

func TestPublicSettings(t *testing.T) {
	svc, _, settings := newTestProfileSvc(t)
	ctx := context.Background()

	settings.EXPECT().GetSettings(ctx, int64(4)).Return(models.DefaultSettings(4, true), nil)
	got, err := svc.PublicSettings(ctx, 4)
	require.NoError(t, err)
	assert.True(t, got.IsPublic)

	settings.EXPECT().GetSettings(ctx, int64(5)).Return(models.PortfolioSettings{}, store.ErrSettingsNotFound)
	got, err = svc.PublicSettings(ctx, 5)
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
}
