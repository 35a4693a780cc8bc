package models

import "slices"

// Permission names carried by a Principal.
const (
	PermissionPortfolioWrite = "portfolio:write"
	PermissionPortfolioRead  = "portfolio:read"
)

// DefaultPermissions is the permission set granted to every registered user.
var DefaultPermissions = []string{PermissionPortfolioRead, PermissionPortfolioWrite}

// Principal is the authenticated identity of a single request. It lives in
// the request context and is discarded when the request ends.
type Principal struct {
	UserID      int64    `json:"user_id"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// Can reports whether the principal holds permission.
func (p Principal) Can(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

// AuthState is the outcome of identity resolution for one request.
type AuthState int

const (
	// AuthUnauthenticated means no valid credential was presented.
	AuthUnauthenticated AuthState = iota
	// AuthBypassed means the request matched a public rule and no credential
	// was examined.
	AuthBypassed
	// AuthAuthenticated means a Principal is attached to the request.
	AuthAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthBypassed:
		return "bypassed"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}
