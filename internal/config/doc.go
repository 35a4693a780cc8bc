// Package config loads, merges and validates configuration for the
// portfolio server and its CLI client.
//
// Sources are merged so that the first non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
