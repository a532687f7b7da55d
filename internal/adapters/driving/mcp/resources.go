package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Scout resources.
	uriScheme = "scout://"

	engineURI       = uriScheme + "engine"
	catalogStatsURI = uriScheme + "catalog/stats"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         engineURI,
		Name:        "engine",
		Description: "The similarity engine serving searches",
		MIMEType:    "application/json",
	}, s.handleEngineResource)

	if s.ports.Catalog != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         catalogStatsURI,
			Name:        "catalog-stats",
			Description: "Catalog rating, content-type and release-year summary",
			MIMEType:    "application/json",
		}, s.handleCatalogStatsResource)
	}
}

// handleEngineResource returns the engine description as JSON.
func (s *Server) handleEngineResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, engineInfo(s.ports.Search.Meta()))
}

// handleCatalogStatsResource returns catalog statistics as JSON.
func (s *Server) handleCatalogStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, s.ports.Catalog.Stats())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
