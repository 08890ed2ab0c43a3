package cli

import (
	"context"
	"sync"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// --- Shared mocks for command tests ---

// mockPanel implements driving.PanelService for testing.
type mockPanel struct {
	mu            sync.Mutex
	mode          domain.SearchMode
	query         string
	selectedPlays []string
	pageSize      int
	debugVisible  bool
	submissions   int

	submitResp *domain.SearchResponse
	submitErr  error
}

var _ driving.PanelService = (*mockPanel)(nil)

func (m *mockPanel) Mode() domain.SearchMode { return m.mode }

func (m *mockPanel) Query() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.query
}

func (m *mockPanel) SetQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = query
}

func (m *mockPanel) SelectedPlays() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	plays := make([]string, len(m.selectedPlays))
	copy(plays, m.selectedPlays)
	return plays
}

func (m *mockPanel) ToggleFacet(play string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, name := range m.selectedPlays {
		if name == play {
			m.selectedPlays = append(m.selectedPlays[:i], m.selectedPlays[i+1:]...)
			return false
		}
	}
	m.selectedPlays = append(m.selectedPlays, play)
	return true
}

func (m *mockPanel) ClearFacets() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedPlays = nil
}

func (m *mockPanel) SetPageSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageSize = size
}

func (m *mockPanel) Submit(_ context.Context) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.submissions++
	m.mu.Unlock()
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

func (m *mockPanel) DebugQuery() string {
	if m.submitResp == nil {
		return ""
	}
	return m.submitResp.PrettyBackendQuery()
}

// mockContextService implements driving.ContextService for testing.
type mockContextService struct {
	line  *domain.PlayLine
	lines []domain.PlayLine
	err   error
}

var _ driving.ContextService = (*mockContextService)(nil)

func (m *mockContextService) Line(_ context.Context, _ int) (*domain.PlayLine, error) {
	return m.line, m.err
}

func (m *mockContextService) Context(_ context.Context, _ string, _, _ int) ([]domain.PlayLine, error) {
	return m.lines, m.err
}

func (m *mockContextService) ContextForLine(_ context.Context, _, _ int) ([]domain.PlayLine, error) {
	return m.lines, m.err
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	cleared bool
	err     error
}

var _ driving.HistoryService = (*mockHistoryService)(nil)

func (m *mockHistoryService) Record(_ context.Context, _ domain.SearchMode, _ domain.SearchRequest, _ int) error {
	return m.err
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	m.cleared = true
	return m.err
}

func sampleResponse() *domain.SearchResponse {
	return &domain.SearchResponse{
		Total: 2,
		Hits: []domain.Hit{
			{LineID: 1, PlayName: "Hamlet", Speaker: "HAMLET", TextEntry: "To be, or not to be"},
			{LineID: 2, PlayName: "Macbeth", TextEntry: "Thunder and lightning."},
		},
		Aggregations: domain.Aggregations{
			Plays: []domain.FacetCount{
				{Name: "Hamlet", Count: 1},
				{Name: "Macbeth", Count: 1},
			},
		},
		BackendQuery: []byte(`{"query":{"match_all":{}}}`),
	}
}

// setupTestServices installs mock services and returns a cleanup
// function restoring the previous ones.
func setupTestServices() func() {
	oldSparse, oldDense := sparsePanel, densePanel
	oldContext, oldHistory := contextService, historyService

	sparsePanel = &mockPanel{mode: domain.ModeSparse, submitResp: sampleResponse()}
	densePanel = &mockPanel{mode: domain.ModeDense, submitResp: sampleResponse()}
	contextService = &mockContextService{}
	historyService = &mockHistoryService{}

	return func() {
		sparsePanel, densePanel = oldSparse, oldDense
		contextService, historyService = oldContext, oldHistory
	}
}
