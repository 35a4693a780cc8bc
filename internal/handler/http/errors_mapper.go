package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/metrics"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidJSON:           http.StatusBadRequest,
	ErrInvalidID:                   http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	ErrAuthenticationRequired:     http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrPortfolioPrivate: http.StatusForbidden,
	service.ErrPermissionDenied: http.StatusForbidden,

	service.ErrNotFoundOrUnauthorized: http.StatusNotFound,
	service.ErrUserNotFound:           http.StatusNotFound,
	service.ErrSkillNotFound:          http.StatusNotFound,

	service.ErrUsernameTaken:        http.StatusConflict,
	service.ErrEmailTaken:           http.StatusConflict,
	service.ErrSkillAlreadyAssigned: http.StatusConflict,

	service.ErrTooManyLoginAttempts: http.StatusTooManyRequests,
}

// authzDenials are the errors counted in the authz denial metric.
var authzDenials = map[error]string{
	service.ErrNotFoundOrUnauthorized: metrics.ReasonNotFoundOrUnauthorized,
	service.ErrPortfolioPrivate:       metrics.ReasonPortfolioPrivate,
	service.ErrUserNotFound:           metrics.ReasonUserNotFound,
}

// resolveError returns the status for err and the sentinel that produced it.
// Unknown errors resolve to 500 and a nil sentinel.
func resolveError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// clientMessage is the sentinel's own text. Validation failures also name the
// field; any other wrapped cause is only logged.
func clientMessage(sentinel, err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return sentinel.Error() + ": " + fieldErr.Error()
	}
	return sentinel.Error()
}

// writeError answers err as {"error": ...}. Server faults are logged with
// the cause and answered with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, sentinel := resolveError(err)

	for target, reason := range authzDenials {
		if errors.Is(err, target) {
			h.metrics.AuthzDenied.WithLabelValues(reason).Inc()
			break
		}
	}

	if sentinel == nil {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, clientMessage(sentinel, err), status)
}
