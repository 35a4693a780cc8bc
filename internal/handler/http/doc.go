// Package http implements the REST transport of the portfolio API.
//
// Every request passes the trace-id, logging, metrics and auth gate
// middlewares in that order. The gate resolves one of three states
// (bypassed, unauthenticated, authenticated) without rejecting anything;
// protected route groups then mount requirePrincipal, which answers 401 when
// no principal was attached. Public portfolio routes mount
// withPublicPortfolio, which authorizes the read once per request.
package http
