// Package mcp provides an MCP (Model Context Protocol) server adapter for Folio.
// It lets AI assistants search the Shakespeare corpus and read lines in context.
package mcp

import "errors"

// ErrMissingSparsePanel is returned when the sparse panel session is not provided.
var ErrMissingSparsePanel = errors.New("mcp: sparse panel session is required")

// ErrMissingDensePanel is returned when the dense panel session is not provided.
var ErrMissingDensePanel = errors.New("mcp: dense panel session is required")

// ErrContextUnavailable is returned when a line tool is invoked without a context service.
var ErrContextUnavailable = errors.New("mcp: line context service is not configured")
