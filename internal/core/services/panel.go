package services

import (
	"context"
	"sync"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
	"github.com/folio-labs/folio-cli/internal/logger"
)

// Ensure PanelSession implements the interface.
var _ driving.PanelService = (*PanelSession)(nil)

// PanelSession holds the state of one search panel: query text, facet
// selection, the last request and response, and the debug view flag.
// The sparse and dense panels are two independent instances.
//
// Every submission carries a sequence number. A response is accepted
// only when its sequence is still the latest issued, so a slow early
// response can never overwrite the results of a later one.
type PanelSession struct {
	mode    domain.SearchMode
	gateway driven.SearchGateway
	history driving.HistoryService

	mu            sync.Mutex
	query         string
	selectedPlays []string
	pageSize      int
	issued        uint64
	lastRequest   *domain.SearchRequest
	lastResponse  *domain.SearchResponse
	debugVisible  bool
}

// NewPanelSession creates a panel session for the given mode.
func NewPanelSession(mode domain.SearchMode, gateway driven.SearchGateway) *PanelSession {
	return &PanelSession{
		mode:    mode,
		gateway: gateway,
	}
}

// SetHistoryService sets the optional history recorder. Without it,
// submissions are not recorded.
func (p *PanelSession) SetHistoryService(history driving.HistoryService) {
	p.history = history
}

// Mode returns the retrieval mode this panel targets.
func (p *PanelSession) Mode() domain.SearchMode {
	return p.mode
}

// Query returns the current query text.
func (p *PanelSession) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// SetQuery replaces the current query text.
func (p *PanelSession) SetQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.query = query
}

// SelectedPlays returns a copy of the facet filter in toggle order.
func (p *PanelSession) SelectedPlays() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	plays := make([]string, len(p.selectedPlays))
	copy(plays, p.selectedPlays)
	return plays
}

// ToggleFacet flips membership of a play in the facet filter and
// reports whether the play is selected afterwards. Selecting appends
// at the end; deselecting removes the entry and keeps the order of
// the rest, so the filter always reflects click order with no
// duplicates.
func (p *PanelSession) ToggleFacet(play string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, name := range p.selectedPlays {
		if name == play {
			p.selectedPlays = append(p.selectedPlays[:i], p.selectedPlays[i+1:]...)
			logger.Debug("Facet %q deselected (%s panel)", play, p.mode)
			return false
		}
	}

	p.selectedPlays = append(p.selectedPlays, play)
	logger.Debug("Facet %q selected (%s panel)", play, p.mode)
	return true
}

// ClearFacets deselects every play.
func (p *PanelSession) ClearFacets() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedPlays = nil
}

// SetPageSize overrides how many hits a submission asks for.
// Non-positive values reset to the default.
func (p *PanelSession) SetPageSize(size int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pageSize = size
}

// Submit sends the current query and facet filter to the search
// service. The request always asks for the first page.
//
// Gateway errors are returned unwrapped so callers can surface the
// server-supplied message verbatim.
func (p *PanelSession) Submit(ctx context.Context) (*domain.SearchResponse, error) {
	if p.gateway == nil {
		return nil, domain.ErrGatewayUnavailable
	}

	p.mu.Lock()
	p.issued++
	seq := p.issued
	req := domain.NewSearchRequest(p.query, p.selectedPlays)
	if p.pageSize > 0 {
		req.Size = p.pageSize
	}
	p.lastRequest = &req
	p.mu.Unlock()

	logger.Section("Search Submission")
	logger.Debug("Panel: %s, seq: %d", p.mode, seq)
	logger.Debug("Query: %q, plays: %v", req.Query, req.SelectedPlays)

	resp, err := p.gateway.Search(ctx, p.mode, req)

	p.mu.Lock()
	stale := seq != p.issued
	if !stale && err == nil {
		p.lastResponse = resp
	}
	p.mu.Unlock()

	if stale {
		logger.Debug("Discarding response for seq %d: superseded", seq)
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, err
	}

	logger.Info("Search returned %d matches", resp.Total)

	if p.history != nil {
		if herr := p.history.Record(ctx, p.mode, req, resp.Total); herr != nil {
			// History is best effort; a storage failure must not
			// fail the search.
			logger.Warn("Recording history failed: %v", herr)
		}
	}

	return resp, nil
}

// LastRequest returns the most recently submitted request, or nil.
func (p *PanelSession) LastRequest() *domain.SearchRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRequest
}

// LastResponse returns the most recently accepted response, or nil.
func (p *PanelSession) LastResponse() *domain.SearchResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastResponse
}

// ToggleDebug flips the debug view visibility flag and returns the
// new value.
func (p *PanelSession) ToggleDebug() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.debugVisible = !p.debugVisible
	return p.debugVisible
}

// DebugVisible reports whether the debug view is shown.
func (p *PanelSession) DebugVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.debugVisible
}

// DebugQuery returns the pretty-printed backend query from the last
// accepted response.
func (p *PanelSession) DebugQuery() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastResponse == nil {
		return ""
	}
	return p.lastResponse.PrettyBackendQuery()
}
