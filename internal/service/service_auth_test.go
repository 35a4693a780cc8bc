// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/mock"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

// newTestAuthSvc wires an authService to gomock collaborators and a real
// codec driven by a fixed clock.
func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockLoginLimiter, *testClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	limiter := mock.NewMockLoginLimiter(ctrl)
	codec, clock := newTestCodec(t)

	svc := NewAuthService(users, codec, limiter, testAppConfig(), logger.Nop()).(*authService)
	return svc, users, limiter, clock
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_HashesPasswordAndCreatesPublicSettings(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User, s models.PortfolioSettings) (models.User, error) {
			assert.Empty(t, u.Password)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			assert.True(t, s.IsPublic)
			assert.Equal(t, "default", s.Theme)
			u.ID = 1
			return u, nil
		})

	got, err := svc.Register(ctx, models.User{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestRegister_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"username taken", store.ErrUsernameAlreadyExists, ErrUsernameTaken},
		{"email taken", store.ErrEmailAlreadyExists, ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _, _ := newTestAuthSvc(t)
			users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, tt.repoErr)

			_, err := svc.Register(context.Background(), models.User{Username: "alice", Password: "secret1"})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegister_StorageError(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Register(context.Background(), models.User{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, users, limiter, _ := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		limiter.EXPECT().Allow(ctx, "alice").Return(true, nil),
		users.EXPECT().FindUserByUsername(ctx, "alice").
			Return(models.User{ID: 1, Username: "alice", PasswordHash: hashed(t, "secret1")}, nil),
		limiter.EXPECT().Reset(ctx, "alice").Return(nil),
	)

	token, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Subject)

	subject, err := svc.codec.Validate(token.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	svc, users, limiter, _ := newTestAuthSvc(t)
	limiter.EXPECT().Allow(ctx, "ghost").Return(true, nil)
	users.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)
	limiter.EXPECT().RecordFailure(ctx, "ghost").Return(nil)

	_, errUnknown := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "secret1"})

	svc, users, limiter, _ = newTestAuthSvc(t)
	limiter.EXPECT().Allow(ctx, "alice").Return(true, nil)
	users.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: hashed(t, "secret1")}, nil)
	limiter.EXPECT().RecordFailure(ctx, "alice").Return(nil)

	_, errWrong := svc.Login(ctx, models.Credentials{Username: "alice", Password: "nope-nope"})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, "invalid username or password", errWrong.Error())
}

func TestLogin_BlockedByLimiter(t *testing.T) {
	svc, _, limiter, _ := newTestAuthSvc(t)
	limiter.EXPECT().Allow(gomock.Any(), "alice").Return(false, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, ErrTooManyLoginAttempts)
}

func TestLogin_LimiterFailureFailsOpen(t *testing.T) {
	svc, users, limiter, _ := newTestAuthSvc(t)
	ctx := context.Background()

	limiter.EXPECT().Allow(ctx, "alice").Return(false, errors.New("redis down"))
	users.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: hashed(t, "secret1")}, nil)
	limiter.EXPECT().Reset(ctx, "alice").Return(errors.New("redis down"))

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
}

func TestLogin_NilLimiterDisablesThrottling(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	codec, _ := newTestCodec(t)
	svc := NewAuthService(users, codec, nil, testAppConfig(), logger.Nop())

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// ResolvePrincipal / Me
// ─────────────────────────────────────────────

func TestResolvePrincipal(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.codec.Issue("alice")
	require.NoError(t, err)

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{ID: 9, Username: "alice"}, nil)

	p, err := svc.ResolvePrincipal(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.UserID)
	assert.Equal(t, "alice", p.Username)
	assert.True(t, p.Can(models.PermissionPortfolioWrite))
}

func TestResolvePrincipal_InvalidTokenSkipsLookup(t *testing.T) {
	svc, _, _, clock := newTestAuthSvc(t)

	token, err := svc.codec.Issue("alice")
	require.NoError(t, err)

	// the user repository mock has no expectations: any lookup fails the test
	clock.t = testNow.Add(2 * time.Hour)
	_, err = svc.ResolvePrincipal(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = svc.ResolvePrincipal(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestResolvePrincipal_UnknownSubject(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)

	token, err := svc.codec.Issue("deleted")
	require.NoError(t, err)
	users.EXPECT().FindUserByUsername(gomock.Any(), "deleted").Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.ResolvePrincipal(context.Background(), token.String())
	require.ErrorIs(t, err, ErrUnknownSubject)
}

func TestMe(t *testing.T) {
	svc, users, _, _ := newTestAuthSvc(t)
	principal := models.Principal{UserID: 3, Username: "alice"}

	users.EXPECT().FindUserByID(gomock.Any(), int64(3)).
		Return(models.User{ID: 3, Username: "alice", PasswordHash: "hash"}, nil)

	u, err := svc.Me(context.Background(), principal)
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)

	users.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)
	_, err = svc.Me(context.Background(), principal)
	require.ErrorIs(t, err, ErrUserNotFound)
}
