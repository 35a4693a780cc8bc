package store

import "errors"

// Domain errors returned by repositories. Callers match them with errors.Is.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when registering a taken username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when registering or updating to a
	// taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSettingsNotFound is returned when a user has no settings row.
	ErrSettingsNotFound = errors.New("portfolio settings not found")

	// ErrSkillNotFound is returned when a catalog skill does not exist.
	ErrSkillNotFound = errors.New("skill not found")

	// ErrNotFoundOrUnauthorized is returned by owner-scoped reads and writes
	// when no row matches both the resource id and the owner id. The two
	// causes are deliberately not told apart.
	ErrNotFoundOrUnauthorized = errors.New("resource not found or unauthorized")

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenceNotFound is returned when a write references a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrConstraintViolation is returned when a write violates a check or
	// not-null constraint.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow           = errors.New("failed to scan row")
	ErrScanningRows          = errors.New("failed to scan rows")
	ErrRowsAffected          = errors.New("failed to read affected rows")
)
