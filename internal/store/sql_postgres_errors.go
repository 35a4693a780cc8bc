package store

import (
	"fmt"

	"github.com/jackc/pgerrcode"
)

// classifyWriteError maps integrity constraint violations raised by INSERT or
// UPDATE statements to domain sentinels. Any other error is wrapped as a
// query execution failure.
func classifyWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
