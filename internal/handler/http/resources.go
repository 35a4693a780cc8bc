package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// resourceRoutes serves the owner CRUD surface of one resource kind.
type resourceRoutes[T models.OwnedResource] struct {
	h    *Handler
	kind models.ResourceKind
	svc  service.ResourceService[T]
}

// mountResource registers /{kind} and /{kind}/{id} on r.
func mountResource[T models.OwnedResource](r chi.Router, h *Handler, kind models.ResourceKind, svc service.ResourceService[T]) {
	rr := resourceRoutes[T]{h: h, kind: kind, svc: svc}

	r.Route("/"+kind.String(), func(r chi.Router) {
		r.Get("/", rr.list)
		r.Post("/", rr.create)
		r.Get("/{id}", rr.get)
		r.Put("/{id}", rr.update)
		r.Delete("/{id}", rr.delete)
	})
}

func (rr resourceRoutes[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := rr.svc.List(r.Context(), principalFrom(r))
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (rr resourceRoutes[T]) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	item, err := rr.svc.AuthorizeForOwner(r.Context(), id, principalFrom(r))
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (rr resourceRoutes[T]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := utils.DecodeJSON(r, &item); err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	created, err := rr.svc.Create(r.Context(), principalFrom(r), item)
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("kind", rr.kind.String()).
		Int64("id", created.GetID()).
		Msg("resource created")
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (rr resourceRoutes[T]) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	var item T
	if err = utils.DecodeJSON(r, &item); err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	updated, err := rr.svc.Update(r.Context(), principalFrom(r), id, item)
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (rr resourceRoutes[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	if err = rr.svc.Delete(r.Context(), principalFrom(r), id); err != nil {
		rr.h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("kind", rr.kind.String()).
		Int64("id", id).
		Msg("resource deleted")
	w.WriteHeader(http.StatusNoContent)
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// nonNil makes empty lists serialize as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
