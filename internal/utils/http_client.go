package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so that application helpers can be added
// without touching callers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends JSON to baseURL and
// gives up after timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithBearer returns a request that carries token in the Authorization
// header. An empty token yields a plain request.
func (c *HTTPClient) WithBearer(token string) *resty.Request {
	req := c.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}
