package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed identity token together with the claims it carries.
//
// The subject claim holds the username. The token is never stored server
// side; it stops being accepted once ExpiresAt is in the past.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
