package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.gate)
	router.Use(recordAuthState)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	s := h.services

	// bypassed by the gate
	router.Post("/api/auth/register", h.register)
	router.Post("/api/auth/login", h.login)
	router.Get("/api/skills", h.listSkills)
	router.Get("/api/skills/{id}", h.getSkill)
	router.Route("/api/portfolios/{username}", func(r chi.Router) {
		r.Use(h.withPublicPortfolio)
		r.Get("/", h.publicPortfolio)
		mountPublicList(r, h, models.KindProject, s.Projects)
		mountPublicList(r, h, models.KindSkill, s.UserSkills)
		mountPublicList(r, h, models.KindEducation, s.Education)
		mountPublicList(r, h, models.KindExperience, s.Experience)
		mountPublicList(r, h, models.KindSocialLink, s.SocialLinks)
		mountPublicList(r, h, models.KindSection, s.Sections)
	})
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	if h.uploadsDir != "" {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))
	}

	// protected
	router.Group(func(r chi.Router) {
		r.Use(h.requirePrincipal)

		r.Get("/api/auth/me", h.me)
		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", h.getProfile)
			r.Put("/", h.updateProfile)
			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)

			mountResource(r, h, models.KindProject, s.Projects)
			mountResource(r, h, models.KindSkill, s.UserSkills)
			mountResource(r, h, models.KindEducation, s.Education)
			mountResource(r, h, models.KindExperience, s.Experience)
			mountResource(r, h, models.KindSocialLink, s.SocialLinks)
			mountResource(r, h, models.KindSection, s.Sections)
		})
	})

	return router
}
