// Package utils provides helpers shared across the application: typed
// request context values, JSON responses, bearer header parsing, JWT
// signing and the resty HTTP client wrapper.
package utils

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

// principalKey and authStateKey are unexported so that only this package can
// write the request identity.
type (
	principalKey struct{}
	authStateKey struct{}
)

// WithPrincipal returns a copy of ctx carrying p. The value is scoped to the
// request the context belongs to.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal attached to ctx, if any.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(models.Principal)
	return p, ok
}

// WithAuthState records how the request identity was resolved.
func WithAuthState(ctx context.Context, state models.AuthState) context.Context {
	return context.WithValue(ctx, authStateKey{}, state)
}

// AuthStateFromContext returns the recorded state, or AuthUnauthenticated when
// nothing was recorded.
func AuthStateFromContext(ctx context.Context) models.AuthState {
	state, ok := ctx.Value(authStateKey{}).(models.AuthState)
	if !ok {
		return models.AuthUnauthenticated
	}
	return state
}
