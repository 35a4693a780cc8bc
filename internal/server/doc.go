// Package server runs the HTTP API until the process is asked to stop, then
// shuts it down gracefully.
package server
