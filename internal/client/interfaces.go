// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the contract of runnable client applications.
type Client interface {
	// Run executes the command named by args[0].
	Run(ctx context.Context, args []string) error
}
