package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ownedRepository implements OwnedRepository for any resource kind described
// by an ownedTable. One implementation serves all six kinds.
type ownedRepository[T models.OwnedResource] struct {
	db     *DB
	table  ownedTable[T]
	logger *logger.Logger
}

func newOwnedRepository[T models.OwnedResource](db *DB, table ownedTable[T], logger *logger.Logger) OwnedRepository[T] {
	logger.Debug().Str("table", table.name).Msg("creating owned repository")
	return &ownedRepository[T]{db: db, table: table, logger: logger}
}

// Create inserts item under ownerID. The owner stored in item is ignored.
func (r *ownedRepository[T]) Create(ctx context.Context, ownerID int64, item T) (T, error) {
	var out T

	query, args, err := r.buildInsertQuery(ownerID, item)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(r.table.fields(&out)...); err != nil {
		r.log(ctx, err, "Create").Int64("user_id", ownerID).Msg("failed to insert owned resource")
		return out, classifyWriteError(err)
	}

	return out, nil
}

// GetByID returns ErrNotFoundOrUnauthorized when no row has id.
func (r *ownedRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var out T

	query, args, err := psql.Select(r.table.selectColumns()...).
		From(r.table.name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(r.table.fields(&out)...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return out, ErrNotFoundOrUnauthorized
	case err != nil:
		r.log(ctx, err, "GetByID").Int64("id", id).Msg("failed to read owned resource")
		return out, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return out, nil
}

// ListByOwner returns the rows of ownerID ordered for display. visibleOnly
// drops hidden rows for kinds that have a visibility column.
func (r *ownedRepository[T]) ListByOwner(ctx context.Context, ownerID int64, visibleOnly bool) ([]T, error) {
	query, args, err := r.buildListQuery(ownerID, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log(ctx, err, "ListByOwner").Int64("user_id", ownerID).Msg("failed to list owned resources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 8)
	for rows.Next() {
		var item T
		if err = rows.Scan(r.table.fields(&item)...); err != nil {
			r.log(ctx, err, "ListByOwner").Int64("user_id", ownerID).Msg("failed to scan owned resource")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateOwned overwrites the writable columns of the row matching both id and
// ownerID in a single statement.
func (r *ownedRepository[T]) UpdateOwned(ctx context.Context, id, ownerID int64, item T) (T, error) {
	var out T

	query, args, err := r.buildUpdateQuery(id, ownerID, item)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(r.table.fields(&out)...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return out, ErrNotFoundOrUnauthorized
	case err != nil:
		r.log(ctx, err, "UpdateOwned").Int64("id", id).Int64("user_id", ownerID).Msg("failed to update owned resource")
		return out, classifyWriteError(err)
	}

	return out, nil
}

// DeleteOwned removes the row matching both id and ownerID. Zero affected
// rows means the row is absent or belongs to someone else.
func (r *ownedRepository[T]) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	query, args, err := psql.Delete(r.table.name).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log(ctx, err, "DeleteOwned").Int64("id", id).Int64("user_id", ownerID).Msg("failed to delete owned resource")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRowsAffected, err)
	}
	if affected == 0 {
		return ErrNotFoundOrUnauthorized
	}

	return nil
}

func (r *ownedRepository[T]) buildInsertQuery(ownerID int64, item T) (string, []any, error) {
	columns := append([]string{"user_id"}, r.table.columns...)
	values := append([]any{ownerID}, r.table.values(item)...)

	return psql.Insert(r.table.name).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(r.table.selectColumns(), ", ")).
		ToSql()
}

func (r *ownedRepository[T]) buildListQuery(ownerID int64, visibleOnly bool) (string, []any, error) {
	builder := psql.Select(r.table.selectColumns()...).
		From(r.table.name).
		Where(sq.Eq{"user_id": ownerID})

	if visibleOnly && r.table.visibility != "" {
		builder = builder.Where(sq.Eq{r.table.visibility: true})
	}

	return builder.OrderBy("display_order", "id").ToSql()
}

func (r *ownedRepository[T]) buildUpdateQuery(id, ownerID int64, item T) (string, []any, error) {
	builder := psql.Update(r.table.name)

	values := r.table.values(item)
	for i, column := range r.table.columns {
		builder = builder.Set(column, values[i])
	}

	return builder.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(r.table.selectColumns(), ", ")).
		ToSql()
}

func (r *ownedRepository[T]) log(ctx context.Context, err error, method string) *zerolog.Event {
	return logger.FromContext(ctx).Err(err).
		Str("func", "ownedRepository."+method).
		Str("table", r.table.name)
}
