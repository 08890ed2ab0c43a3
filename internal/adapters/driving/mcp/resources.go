package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Folio resources.
	uriScheme = "folio://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for a single corpus line.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lines/{lineId}",
		Name:        "line",
		Description: "A single line of the Shakespeare corpus",
		MIMEType:    "text/plain",
	}, s.handleLineResource)

	// Template for a line's context window.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lines/{lineId}/context",
		Name:        "line-context",
		Description: "A line together with the lines around it in its play",
		MIMEType:    "application/json",
	}, s.handleContextResource)
}

// handleLineResource returns the text of a single corpus line.
func (s *Server) handleLineResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Context == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	lineID, ok := extractLineID(req.Params.URI, "")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	line, err := s.ports.Context.Line(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("loading line %d: %w", lineID, err)
	}

	text := fmt.Sprintf("%s\n%s: %s\n", line.PlayName, line.SpeakerLabel(), line.TextEntry)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// handleContextResource returns a line's context window as JSON.
func (s *Server) handleContextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Context == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	lineID, ok := extractLineID(req.Params.URI, "/context")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	lines, err := s.ports.Context.ContextForLine(ctx, lineID, defaultContextSize)
	if err != nil {
		return nil, fmt.Errorf("loading context for line %d: %w", lineID, err)
	}

	infos := make([]LineOutput, len(lines))
	for i := range lines {
		infos[i] = LineOutput{
			LineID:  lines[i].LineID,
			Speaker: lines[i].SpeakerLabel(),
			Text:    lines[i].TextEntry,
			Current: lines[i].IsCurrent,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling context: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLineID parses the line ID out of a URI like
// folio://lines/{lineId}{suffix}.
func extractLineID(uri, suffix string) (int, bool) {
	const prefix = uriScheme + "lines/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	rest := strings.TrimPrefix(uri, prefix)

	if suffix != "" {
		if !strings.HasSuffix(rest, suffix) {
			return 0, false
		}
		rest = strings.TrimSuffix(rest, suffix)
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}
