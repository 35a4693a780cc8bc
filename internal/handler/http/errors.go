// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrAuthenticationRequired is answered with 401 on protected routes
	// when the gate attached no principal.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidID is returned for a non-numeric or non-positive {id}.
	ErrInvalidID = errors.New("invalid id")

	errMissingPortfolioOwner = errors.New("portfolio owner missing from context")
)
