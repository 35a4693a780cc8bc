package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.ProfileService.GetProfile(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), principalFrom(r), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.ProfileService.GetSettings(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.PortfolioSettings
	if err := utils.DecodeJSON(r, &settings); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.ProfileService.UpdateSettings(r.Context(), principalFrom(r), settings)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}
