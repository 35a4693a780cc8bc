package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] for the API at
// cfg.HTTPAddress. A scheme-less address is treated as http. cfg.Token, when
// set, is used for authenticated requests.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if token.Token == "" {
		return "", errEmptyToken
	}

	h.SetToken(token.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token.Token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	if h.token == "" {
		return models.User{}, ErrNotSignedIn
	}

	var user models.User
	err := h.get(ctx, "/api/auth/me", h.token, nil, &user)
	return user, err
}

func (h *httpServerAdapter) Portfolio(ctx context.Context, username string) (models.PublicPortfolio, error) {
	var portfolio models.PublicPortfolio
	err := h.get(ctx, "/api/portfolios/"+url.PathEscape(username), "", nil, &portfolio)
	return portfolio, err
}

func (h *httpServerAdapter) Projects(ctx context.Context, username string) ([]models.Project, error) {
	var projects []models.Project
	path := "/api/portfolios/" + url.PathEscape(username) + "/" + models.KindProject.String()
	err := h.get(ctx, path, "", nil, &projects)
	return projects, err
}

func (h *httpServerAdapter) Skills(ctx context.Context, category string) ([]models.Skill, error) {
	var query map[string]string
	if category != "" {
		query = map[string]string{"category": category}
	}

	var skills []models.Skill
	err := h.get(ctx, "/api/skills", "", query, &skills)
	return skills, err
}

// get performs a GET and decodes a 2xx JSON body into dst. Public routes
// are called without a token.
func (h *httpServerAdapter) get(ctx context.Context, path, token string, query map[string]string, dst any) error {
	resp, err := h.client.WithBearer(token).
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
