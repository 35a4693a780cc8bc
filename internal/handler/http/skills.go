package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
)

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.services.SkillService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, nonNil(skills), http.StatusOK)
}

func (h *Handler) getSkill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	skill, err := h.services.SkillService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, skill, http.StatusOK)
}
