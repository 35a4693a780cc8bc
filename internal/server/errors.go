// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errHTTPNotConfigured is returned by NewServer without an HTTP handler or a
// listen address.
var errHTTPNotConfigured = errors.New("http handler or listen address not configured")
