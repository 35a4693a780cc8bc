package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoBearerToken is returned when an Authorization header is absent or does
// not use the Bearer scheme.
var ErrNoBearerToken = errors.New("no bearer token")

const bearerPrefix = "Bearer "

// GenerateJWTToken signs an HS256 token for subject.
//
// The token carries iss, sub, iat and exp, where exp is now plus
// tokenDuration. All parameters are required.
func GenerateJWTToken(issuer, subject string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: signed}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// The signature is verified before any claim is trusted; only HS256 is
// accepted, and base64 segments must be strictly encoded. Expiry and issuer
// are then checked against now. Errors are the jwt package errors, so callers
// can match them with errors.Is (jwt.ErrTokenExpired,
// jwt.ErrTokenSignatureInvalid, jwt.ErrTokenMalformed, ...).
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	h := strings.TrimSpace(authorizationHeader)
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrNoBearerToken
	}

	token := strings.TrimSpace(h[len(bearerPrefix):])
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrNoBearerToken
	}

	return token, nil
}
