package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or issuer, a
	// non-positive token lifetime or an out-of-range bcrypt cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimiterConfigs indicates Redis is configured but the login
	// limiter window or attempt count is not.
	ErrInvalidLimiterConfigs = errors.New("invalid limiter configuration")
	// ErrInvalidAdapterConfigs indicates the client has no API address or
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

// ErrEnvironment wraps env parsing failures.
var ErrEnvironment = errors.New("environment")
