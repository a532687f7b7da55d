// Package mcp provides an MCP (Model Context Protocol) server adapter for Scout.
// It lets AI assistants rank the catalog and inspect the active engine.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
