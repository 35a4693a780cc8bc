package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// resourceService implements ResourceService for any owned resource kind.
//
// Update and Delete never read the row first: the store filters the write
// on id and owner id, and a write that matches nothing is reported as
// ErrNotFoundOrUnauthorized.
type resourceService[T models.OwnedResource] struct {
	OwnershipGuard[T]

	kind models.ResourceKind
	repo store.OwnedRepository[T]

	// prepare fills defaults before a create. Optional.
	prepare func(T) T

	// writeError maps kind-specific storage errors. Optional.
	writeError func(error) error
}

type resourceOption[T models.OwnedResource] func(*resourceService[T])

func withPrepare[T models.OwnedResource](fn func(T) T) resourceOption[T] {
	return func(s *resourceService[T]) { s.prepare = fn }
}

func withWriteError[T models.OwnedResource](fn func(error) error) resourceOption[T] {
	return func(s *resourceService[T]) { s.writeError = fn }
}

func NewResourceService[T models.OwnedResource](repo store.OwnedRepository[T], kind models.ResourceKind, opts ...resourceOption[T]) ResourceService[T] {
	s := &resourceService[T]{
		OwnershipGuard: NewOwnershipGuard(repo, kind),
		kind:           kind,
		repo:           repo,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *resourceService[T]) List(ctx context.Context, principal models.Principal) ([]T, error) {
	items, err := s.repo.ListByOwner(ctx, principal.UserID, false)
	if err != nil {
		return nil, fmt.Errorf("listing %s failed: %w", s.kind, err)
	}

	return items, nil
}

func (s *resourceService[T]) Create(ctx context.Context, principal models.Principal, item T) (T, error) {
	var zero T

	if !principal.Can(models.PermissionPortfolioWrite) {
		return zero, ErrPermissionDenied
	}
	if s.prepare != nil {
		item = s.prepare(item)
	}

	created, err := s.repo.Create(ctx, principal.UserID, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(s.kind)).Int64("user_id", principal.UserID).Msg("create failed")
		return zero, s.mapWriteError(err)
	}

	return created, nil
}

func (s *resourceService[T]) Update(ctx context.Context, principal models.Principal, id int64, item T) (T, error) {
	var zero T

	if !principal.Can(models.PermissionPortfolioWrite) {
		return zero, ErrPermissionDenied
	}

	updated, err := s.repo.UpdateOwned(ctx, id, principal.UserID, item)
	if err != nil {
		return zero, s.mapWriteError(err)
	}

	return updated, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, principal models.Principal, id int64) error {
	if !principal.Can(models.PermissionPortfolioWrite) {
		return ErrPermissionDenied
	}

	if err := s.repo.DeleteOwned(ctx, id, principal.UserID); err != nil {
		return s.mapWriteError(err)
	}

	logger.FromContext(ctx).Info().Str("kind", string(s.kind)).Int64("id", id).Msg("resource deleted")
	return nil
}

func (s *resourceService[T]) ListPublic(ctx context.Context, ownerID int64) ([]T, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID, true)
	if err != nil {
		return nil, fmt.Errorf("listing public %s failed: %w", s.kind, err)
	}

	return items, nil
}

func (s *resourceService[T]) mapWriteError(err error) error {
	if s.writeError != nil {
		if mapped := s.writeError(err); mapped != nil {
			return mapped
		}
	}

	switch {
	case errors.Is(err, store.ErrNotFoundOrUnauthorized):
		return ErrNotFoundOrUnauthorized
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%s write failed: %w", s.kind, err)
	}
}

// userSkillDefaults applies the defaults of a new skill assignment.
func userSkillDefaults(s models.UserSkill) models.UserSkill {
	if s.Proficiency == 0 {
		s.Proficiency = models.DefaultProficiency
	}
	return s
}

// userSkillWriteError maps catalog reference and uniqueness failures.
func userSkillWriteError(err error) error {
	switch {
	case errors.Is(err, store.ErrReferenceNotFound):
		return ErrSkillNotFound
	case errors.Is(err, store.ErrDuplicate):
		return ErrSkillAlreadyAssigned
	}
	return nil
}
