package mcp

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// mockPanel implements driving.PanelService for MCP tests.
type mockPanel struct {
	mode          domain.SearchMode
	query         string
	selectedPlays []string
	pageSize      int
	debugVisible  bool

	submitResp *domain.SearchResponse
	submitErr  error
}

var _ driving.PanelService = (*mockPanel)(nil)

func (m *mockPanel) Mode() domain.SearchMode { return m.mode }
func (m *mockPanel) Query() string           { return m.query }
func (m *mockPanel) SetQuery(query string)   { m.query = query }
func (m *mockPanel) SelectedPlays() []string { return m.selectedPlays }

func (m *mockPanel) ToggleFacet(play string) bool {
	for i, name := range m.selectedPlays {
		if name == play {
			m.selectedPlays = append(m.selectedPlays[:i], m.selectedPlays[i+1:]...)
			return false
		}
	}
	m.selectedPlays = append(m.selectedPlays, play)
	return true
}

func (m *mockPanel) ClearFacets()         { m.selectedPlays = nil }
func (m *mockPanel) SetPageSize(size int) { m.pageSize = size }

func (m *mockPanel) Submit(_ context.Context) (*domain.SearchResponse, error) {
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	if m.submitResp != nil {
		return m.submitResp, nil
	}
	return &domain.SearchResponse{}, nil
}

func (m *mockPanel) LastRequest() *domain.SearchRequest   { return nil }
func (m *mockPanel) LastResponse() *domain.SearchResponse { return m.submitResp }

func (m *mockPanel) ToggleDebug() bool {
	m.debugVisible = !m.debugVisible
	return m.debugVisible
}

func (m *mockPanel) DebugVisible() bool { return m.debugVisible }
func (m *mockPanel) DebugQuery() string { return "" }

// mockContext implements driving.ContextService for MCP tests.
type mockContext struct {
	line    *domain.PlayLine
	lines   []domain.PlayLine
	lineErr error
	ctxErr  error
}

var _ driving.ContextService = (*mockContext)(nil)

func (m *mockContext) Line(_ context.Context, _ int) (*domain.PlayLine, error) {
	if m.lineErr != nil {
		return nil, m.lineErr
	}
	return m.line, nil
}

func (m *mockContext) Context(_ context.Context, _ string, _, _ int) ([]domain.PlayLine, error) {
	if m.ctxErr != nil {
		return nil, m.ctxErr
	}
	return m.lines, nil
}

func (m *mockContext) ContextForLine(_ context.Context, _, _ int) ([]domain.PlayLine, error) {
	if m.ctxErr != nil {
		return nil, m.ctxErr
	}
	return m.lines, nil
}
