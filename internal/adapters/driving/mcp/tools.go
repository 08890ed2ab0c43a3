package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string   `json:"query" jsonschema:"the search query; empty matches every line"`
	Mode  string   `json:"mode,omitempty" jsonschema:"retrieval mode, sparse or dense (default sparse)"`
	Plays []string `json:"plays,omitempty" jsonschema:"restrict matches to these plays"`
	Size  int      `json:"size,omitempty" jsonschema:"maximum number of matches to return (default 20)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Total int         `json:"total"`
	Hits  []HitOutput `json:"hits"`
	Plays []PlayCount `json:"plays,omitempty"`
}

// HitOutput represents a single matching line.
type HitOutput struct {
	LineID   int    `json:"line_id"`
	PlayName string `json:"play_name"`
	Speaker  string `json:"speaker"`
	Text     string `json:"text"`
	Snippet  string `json:"snippet,omitempty"`
}

// PlayCount is one play facet bucket.
type PlayCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LineContextInput is the input schema for the line_context tool.
type LineContextInput struct {
	LineID int `json:"line_id" jsonschema:"the corpus line to centre on"`
	Size   int `json:"size,omitempty" jsonschema:"lines of context either side (default 5)"`
}

// LineContextOutput is the output schema for the line_context tool.
type LineContextOutput struct {
	PlayName string       `json:"play_name"`
	Lines    []LineOutput `json:"lines"`
}

// LineOutput represents one line of a context window.
type LineOutput struct {
	LineID  int    `json:"line_id"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Current bool   `json:"current,omitempty"`
}

// defaultContextSize is the window used when the caller gives none.
const defaultContextSize = 5

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the Shakespeare corpus with sparse or dense semantic retrieval",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "line_context",
		Description: "Read a corpus line together with the lines around it in its play",
	}, s.handleLineContext)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	mode := domain.ModeSparse
	if input.Mode != "" {
		parsed, err := domain.ParseSearchMode(input.Mode)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		mode = parsed
	}

	panel := s.panelFor(mode)

	panel.SetQuery(input.Query)
	panel.SetPageSize(input.Size)
	panel.ClearFacets()
	for _, play := range input.Plays {
		panel.ToggleFacet(play)
	}

	resp, err := panel.Submit(ctx)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Total: resp.Total,
		Hits:  make([]HitOutput, len(resp.Hits)),
	}

	for i := range resp.Hits {
		hit := &resp.Hits[i]
		output.Hits[i] = HitOutput{
			LineID:   hit.LineID,
			PlayName: hit.PlayName,
			Speaker:  hit.SpeakerLabel(),
			Text:     hit.TextEntry,
			Snippet:  hit.Snippet(),
		}
	}

	for _, facet := range resp.Aggregations.Plays {
		output.Plays = append(output.Plays, PlayCount{Name: facet.Name, Count: facet.Count})
	}

	return nil, output, nil
}

// handleLineContext handles the line_context tool invocation.
func (s *Server) handleLineContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LineContextInput,
) (*mcp.CallToolResult, LineContextOutput, error) {
	if s.ports.Context == nil {
		return nil, LineContextOutput{}, ErrContextUnavailable
	}

	size := input.Size
	if size <= 0 {
		size = defaultContextSize
	}

	lines, err := s.ports.Context.ContextForLine(ctx, input.LineID, size)
	if err != nil {
		return nil, LineContextOutput{}, err
	}

	output := LineContextOutput{
		Lines: make([]LineOutput, len(lines)),
	}
	if len(lines) > 0 {
		output.PlayName = lines[0].PlayName
	}

	for i := range lines {
		line := &lines[i]
		output.Lines[i] = LineOutput{
			LineID:  line.LineID,
			Speaker: line.SpeakerLabel(),
			Text:    line.TextEntry,
			Current: line.IsCurrent,
		}
	}

	return nil, output, nil
}

// panelFor maps a retrieval mode to its panel session.
func (s *Server) panelFor(mode domain.SearchMode) driving.PanelService {
	if mode == domain.ModeDense {
		return s.ports.Dense
	}
	return s.ports.Sparse
}
