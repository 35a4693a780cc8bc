package http

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// publicPrefixes never require a credential. A prefix matches whole path
// segments only: /api/skills matches /api/skills/3 but not /api/skillset.
var publicPrefixes = []string{
	"/api/auth/login",
	"/api/auth/register",
	"/uploads",
	"/api/portfolios",
	"/api/skills",
	"/metrics",
}

// isBypassed reports whether r skips identity resolution. Pre-flight
// requests are bypassed regardless of path.
func isBypassed(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	p := path.Clean("/" + r.URL.Path)
	for _, prefix := range publicPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}

	return false
}

// gate resolves the identity of every request exactly once.
//
// Bypassed requests continue without looking at any credential. Otherwise a
// bearer token is validated and, when valid, the principal is attached to
// the request context. A missing, malformed, forged or expired token leaves
// the request unauthenticated; rejecting it is left to requirePrincipal so
// that all four cases end in the same response. Only a store failure during
// the principal lookup ends the request here.
func (h *Handler) gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if isBypassed(r) {
			h.metrics.AuthGate.WithLabelValues(models.AuthBypassed.String()).Inc()
			next.ServeHTTP(w, r.WithContext(utils.WithAuthState(ctx, models.AuthBypassed)))
			return
		}

		state := models.AuthUnauthenticated

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err == nil {
			var principal models.Principal
			principal, err = h.services.AuthService.ResolvePrincipal(ctx, raw)
			switch reason := tokenFailureReason(err); {
			case err == nil:
				state = models.AuthAuthenticated
				ctx = utils.WithPrincipal(ctx, principal)
				ctx = withPrincipalLogger(ctx, principal)
			case reason != "":
				logger.FromContext(ctx).Debug().Err(err).Str("reason", reason).Msg("bearer token rejected")
				h.metrics.TokenFailures.WithLabelValues(reason).Inc()
			default:
				h.writeError(w, r, err)
				return
			}
		}

		h.metrics.AuthGate.WithLabelValues(state.String()).Inc()
		next.ServeHTTP(w, r.WithContext(utils.WithAuthState(ctx, state)))
	})
}

// tokenFailureReason names a credential failure, or returns "" for errors
// that are not about the credential.
func tokenFailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, service.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, service.ErrUnknownSubject):
		return "unknown_subject"
	default:
		return ""
	}
}

func withPrincipalLogger(ctx context.Context, p models.Principal) context.Context {
	l := logger.FromContext(ctx).With().
		Int64("user_id", p.UserID).
		Str("username", p.Username).
		Logger()
	return l.WithContext(ctx)
}

// requirePrincipal rejects requests without a principal. It is mounted on
// every protected route group. Pre-flight requests pass so the router can
// answer them.
func (h *Handler) requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := utils.PrincipalFromContext(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="portfolio"`)
			h.writeError(w, r, ErrAuthenticationRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type portfolioOwnerKey struct{}

// withPublicPortfolio authorizes the public read of {username} once for the
// whole route group and stores the owner for the handlers.
func (h *Handler) withPublicPortfolio(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		username := chi.URLParam(r, "username")

		owner, err := h.services.VisibilityResolver.AuthorizeForPublicRead(r.Context(), username)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), portfolioOwnerKey{}, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func portfolioOwner(ctx context.Context) (models.User, bool) {
	owner, ok := ctx.Value(portfolioOwnerKey{}).(models.User)
	return owner, ok
}
