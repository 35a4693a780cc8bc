package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/models"
)

// ownershipGuard is the one ownership policy shared by every resource kind.
type ownershipGuard[T models.OwnedResource] struct {
	repo store.OwnedRepository[T]
	kind models.ResourceKind
}

func NewOwnershipGuard[T models.OwnedResource](repo store.OwnedRepository[T], kind models.ResourceKind) OwnershipGuard[T] {
	return &ownershipGuard[T]{repo: repo, kind: kind}
}

func (g *ownershipGuard[T]) AuthorizeForOwner(ctx context.Context, id int64, principal models.Principal) (T, error) {
	var zero T

	item, err := g.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFoundOrUnauthorized):
		return zero, ErrNotFoundOrUnauthorized
	case err != nil:
		return zero, fmt.Errorf("%s lookup failed: %w", g.kind, err)
	}

	if item.GetOwnerID() != principal.UserID {
		logger.FromContext(ctx).Info().
			Str("kind", string(g.kind)).
			Int64("id", id).
			Int64("principal", principal.UserID).
			Msg("ownership check failed")
		return zero, ErrNotFoundOrUnauthorized
	}

	return item, nil
}
