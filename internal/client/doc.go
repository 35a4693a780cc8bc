// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the portfolio API.
//
// Each invocation runs one command against the server and prints the result.
// Passwords are prompted for and never taken from arguments.
package client
