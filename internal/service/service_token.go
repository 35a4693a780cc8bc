package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenCodec signs HS256 tokens with a shared secret. It holds no mutable
// state and is safe for concurrent use.
type tokenCodec struct {
	signKey  string
	issuer   string
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenCodec returns a TokenCodec configured from cfg.
func NewTokenCodec(cfg config.App) TokenCodec {
	return newTokenCodec(cfg, time.Now)
}

func newTokenCodec(cfg config.App, now func() time.Time) *tokenCodec {
	return &tokenCodec{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		lifetime: cfg.TokenDuration,
		now:      now,
	}
}

func (c *tokenCodec) Issue(subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(c.issuer, subject, c.now(), c.lifetime, c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (c *tokenCodec) Validate(raw string) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, c.signKey, c.issuer, c.now)
	if err != nil {
		return "", classifyTokenError(raw, err)
	}

	if token.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	return token.Subject, nil
}

// classifyTokenError maps a jwt error onto the three token failures.
// The parser verifies the signature before it validates claims, so a
// signature error is never hidden behind an expiry error.
func classifyTokenError(raw string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		// jwt also reports an undecodable signature segment as malformed.
		if headerAndClaimsDecode(raw) {
			return fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
		}
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

// headerAndClaimsDecode reports whether the first two segments of raw are a
// well-formed header and claim set, regardless of the signature segment.
func headerAndClaimsDecode(raw string) bool {
	parts := strings.SplitN(raw, ".", 3)
	if len(parts) != 3 {
		return false
	}

	enc := base64.RawURLEncoding.Strict()

	header, err := enc.DecodeString(parts[0])
	if err != nil {
		return false
	}
	var h map[string]any
	if err = json.Unmarshal(header, &h); err != nil {
		return false
	}

	payload, err := enc.DecodeString(parts[1])
	if err != nil {
		return false
	}
	var claims jwt.RegisteredClaims
	return json.Unmarshal(payload, &claims) == nil
}
