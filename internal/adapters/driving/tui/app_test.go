package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// stubPanel is a minimal driving.PanelService for app tests.
type stubPanel struct {
	mode  domain.SearchMode
	query string
	plays []string
	debug bool
}

var _ driving.PanelService = (*stubPanel)(nil)

func (s *stubPanel) Mode() domain.SearchMode { return s.mode }
func (s *stubPanel) Query() string           { return s.query }
func (s *stubPanel) SetQuery(q string)       { s.query = q }
func (s *stubPanel) SelectedPlays() []string { return s.plays }
func (s *stubPanel) ToggleFacet(p string) bool {
	s.plays = append(s.plays, p)
	return true
}
func (s *stubPanel) ClearFacets()      { s.plays = nil }
func (s *stubPanel) SetPageSize(_ int) {}
func (s *stubPanel) Submit(_ context.Context) (*domain.SearchResponse, error) {
	return &domain.SearchResponse{}, nil
}
func (s *stubPanel) LastRequest() *domain.SearchRequest   { return nil }
func (s *stubPanel) LastResponse() *domain.SearchResponse { return nil }
func (s *stubPanel) ToggleDebug() bool {
	s.debug = !s.debug
	return s.debug
}
func (s *stubPanel) DebugVisible() bool { return s.debug }
func (s *stubPanel) DebugQuery() string { return "" }

// stubContext is a minimal driving.ContextService for app tests.
type stubContext struct {
	lines []domain.PlayLine
}

var _ driving.ContextService = (*stubContext)(nil)

func (s *stubContext) Line(_ context.Context, _ int) (*domain.PlayLine, error) {
	return nil, domain.ErrNotFound
}

func (s *stubContext) Context(_ context.Context, _ string, _, _ int) ([]domain.PlayLine, error) {
	return s.lines, nil
}

func (s *stubContext) ContextForLine(_ context.Context, _, _ int) ([]domain.PlayLine, error) {
	return s.lines, nil
}

func testPorts() *Ports {
	return &Ports{
		Sparse:  &stubPanel{mode: domain.ModeSparse},
		Dense:   &stubPanel{mode: domain.ModeDense},
		Context: &stubContext{},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(testPorts())
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

func TestNewApp_RequiresPanels(t *testing.T) {
	_, err := NewApp(&Ports{Dense: &stubPanel{mode: domain.ModeDense}})
	assert.ErrorIs(t, err, ErrMissingSparsePanel)

	_, err = NewApp(&Ports{Sparse: &stubPanel{mode: domain.ModeSparse}})
	assert.ErrorIs(t, err, ErrMissingDensePanel)
}

func TestNewApp_StartsOnMenu(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewChangedSwitchesView(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewSearch})
	app = model.(*App)

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Contains(t, app.View(), "sparse vector (ELSER)")
	assert.Contains(t, app.View(), "dense vector (E5)")
}

func TestApp_LineSelectedOpensLineView(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.LineSelected{LineID: 42})
	app = model.(*App)

	assert.Equal(t, messages.ViewLine, app.CurrentView())
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.LineContextLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
}

func TestApp_LineSelectedIgnoredWithoutContextService(t *testing.T) {
	ports := testPorts()
	ports.Context = nil

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)

	model, cmd := app.Update(messages.LineSelected{LineID: 42})
	app = model.(*App)

	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_HelpViewEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	app = model.(*App)
	require.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Toggle the play facet")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_NotReadyBeforeSize(t *testing.T) {
	app, err := NewApp(testPorts())
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Contains(t, app.View(), "Initialising")
}
