package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt, issues tokens through a TokenCodec and
// throttles failed logins through a LoginLimiter.
type authService struct {
	userRepository store.UserRepository
	codec          TokenCodec
	limiter        LoginLimiter

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// dummyHash is compared against when the username is unknown, so that
	// both login failures cost one bcrypt comparison.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. A nil limiter disables login
// throttling.
func NewAuthService(userRepository store.UserRepository, codec TokenCodec, limiter LoginLimiter, cfg config.App, logger *logger.Logger) AuthService {
	if limiter == nil {
		limiter = NoopLimiter{}
	}

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), cost)

	return &authService{
		userRepository: userRepository,
		codec:          codec,
		limiter:        limiter,
		bcryptCost:     cost,
		dummyHash:      dummy,
		logger:         logger,
	}
}

// Register hashes the password and stores the user together with public
// default settings.
//
// Returns the stored user without password fields, or:
//   - ErrUsernameTaken / ErrEmailTaken on a uniqueness conflict.
//   - A wrapped storage error otherwise.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	created, err := a.userRepository.CreateUser(ctx, user, models.DefaultSettings(0, true))
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, ErrUsernameTaken
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailTaken
	case err != nil:
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created.Public(), nil
}

// Login checks credentials and issues a token for the username.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	allowed, err := a.limiter.Allow(ctx, credentials.Username)
	if err != nil {
		log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if !allowed {
		log.Warn().Str("username", credentials.Username).Msg("login blocked by limiter")
		return models.Token{}, ErrTooManyLoginAttempts
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		a.recordFailure(ctx, credentials.Username)
		return models.Token{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		a.recordFailure(ctx, credentials.Username)
		return models.Token{}, ErrInvalidCredentials
	}

	if err = a.limiter.Reset(ctx, credentials.Username); err != nil {
		log.Warn().Err(err).Msg("failed to reset login limiter")
	}

	return a.codec.Issue(user.Username)
}

// ResolvePrincipal builds the Principal for rawToken. The user lookup only
// happens after the token passed every check.
func (a *authService) ResolvePrincipal(ctx context.Context, rawToken string) (models.Principal, error) {
	subject, err := a.codec.Validate(rawToken)
	if err != nil {
		return models.Principal{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, subject)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.Principal{}, ErrUnknownSubject
	case err != nil:
		return models.Principal{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	return models.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		Permissions: slices.Clone(models.DefaultPermissions),
	}, nil
}

func (a *authService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrUserNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

func (a *authService) recordFailure(ctx context.Context, username string) {
	if err := a.limiter.RecordFailure(ctx, username); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to record login failure")
	}
}

// NoopLimiter never throttles.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error)  { return true, nil }
func (NoopLimiter) RecordFailure(context.Context, string) error { return nil }
func (NoopLimiter) Reset(context.Context, string) error         { return nil }
