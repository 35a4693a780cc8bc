package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// userRepository is the PostgreSQL implementation of UserRepository over the
// "users" table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a UserRepository backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and its settings row in a single
// transaction, so a user never exists without settings.
//
// A unique violation is reported as ErrUsernameAlreadyExists or
// ErrEmailAlreadyExists depending on the violated constraint.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, settings models.PortfolioSettings) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName)
		if err := scanUser(row, &created); err != nil {
			return userWriteError(err)
		}

		_, err := tx.ExecContext(ctx, upsertSettings, created.ID, settings.Theme, settings.Layout,
			settings.ColorPrimary, settings.ColorSecondary, settings.FontFamily, settings.IsPublic)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to create user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByUsername returns ErrUserNotFound when no account has username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, findUserByUsername, username), &user); err != nil {
		return models.User{}, r.readError(ctx, "userRepository.FindUserByUsername", err)
	}

	return user, nil
}

// FindUserByID returns ErrUserNotFound when no account has id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := scanUser(r.db.QueryRowContext(ctx, findUserByID, id), &user); err != nil {
		return models.User{}, r.readError(ctx, "userRepository.FindUserByID", err)
	}

	return user, nil
}

// UpdateProfile overwrites the editable profile fields of userID.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, p models.ProfileUpdate) (models.User, error) {
	var user models.User
	row := r.db.QueryRowContext(ctx, updateUserProfile, userID, p.Email, p.FirstName, p.LastName, p.Bio,
		p.ProfileImage, p.JobTitle, p.Location)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.UpdateProfile").Int64("user_id", userID).Msg("failed to update profile")
		return models.User{}, userWriteError(err)
	}

	return user, nil
}

func (r *userRepository) readError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to read user")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func scanUser(row *sql.Row, u *models.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Bio,
		&u.ProfileImage, &u.JobTitle, &u.Location, &u.CreatedAt, &u.UpdatedAt)
}

func userWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if pgErr.ConstraintName == "users_email_key" {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}

	return classifyWriteError(err)
}
