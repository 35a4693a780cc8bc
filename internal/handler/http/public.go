package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// publicPortfolio answers the root of a public portfolio: the owner's
// profile and appearance settings.
func (h *Handler) publicPortfolio(w http.ResponseWriter, r *http.Request) {
	owner, ok := portfolioOwner(r.Context())
	if !ok {
		h.writeError(w, r, errMissingPortfolioOwner)
		return
	}

	settings, err := h.services.ProfileService.PublicSettings(r.Context(), owner.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PublicPortfolio{User: owner, Settings: settings}, http.StatusOK)
}

// mountPublicList registers GET /{kind} listing the portfolio owner's items.
func mountPublicList[T models.OwnedResource](r chi.Router, h *Handler, kind models.ResourceKind, svc service.ResourceService[T]) {
	r.Get("/"+kind.String(), func(w http.ResponseWriter, r *http.Request) {
		owner, ok := portfolioOwner(r.Context())
		if !ok {
			h.writeError(w, r, errMissingPortfolioOwner)
			return
		}

		items, err := svc.ListPublic(r.Context(), owner.ID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		_, _ = utils.WriteJSON(w, nonNil(items), http.StatusOK)
	})
}
