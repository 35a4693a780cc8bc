package service

import "errors"

// Token validation failures. Exactly one is wrapped by every error returned
// from TokenCodec.Validate.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature does not match payload")
	ErrTokenExpired      = errors.New("token expired")
)

// Authorization failures.
var (
	// ErrNotFoundOrUnauthorized does not tell a missing resource from one
	// owned by another user.
	ErrNotFoundOrUnauthorized = errors.New("resource not found")
	ErrPortfolioPrivate       = errors.New("portfolio is private")
	ErrUserNotFound           = errors.New("user not found")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrUnknownSubject         = errors.New("token subject does not resolve to a user")
)

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
	ErrTokenCreationFailed  = errors.New("token creation failed")

	ErrSkillNotFound        = errors.New("skill not found")
	ErrSkillAlreadyAssigned = errors.New("skill is already assigned")
)
