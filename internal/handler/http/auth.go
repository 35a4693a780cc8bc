package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		h.writeError(w, r, err)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registered.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", credentials.Username).Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Me(r.Context(), principalFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// principalFrom returns the principal of a request that passed
// requirePrincipal.
func principalFrom(r *http.Request) models.Principal {
	principal, _ := utils.PrincipalFromContext(r.Context())
	return principal
}
