// Package panel provides one search panel view. The sparse and dense
// panels are two instances of the same view, each bound to its own
// panel session.
package panel

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/facets"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/hits"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/input"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// focusArea identifies which part of the panel receives keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusHits
	focusFacets
)

// View is a single search panel: query input, hit list, facet list,
// and the backend query overlay.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	panel  driving.PanelService
	input  *input.QueryInput
	hits   *hits.HitList
	facets *facets.FacetList

	ctx context.Context

	width     int
	height    int
	active    bool
	searching bool
	focus     focusArea
	err       error
}

// NewView creates a panel view bound to a panel session.
func NewView(s *styles.Styles, km *keymap.KeyMap, panel driving.PanelService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		panel:  panel,
		input:  input.NewQueryInput(s),
		hits:   hits.NewHitList(s),
		facets: facets.NewFacetList(s),
		ctx:    context.Background(),
		width:  60,
		height: 24,
		focus:  focusInput,
	}
}

// WithContext sets the context used for submissions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Mode returns the retrieval mode of the bound session.
func (v *View) Mode() domain.SearchMode {
	return v.panel.Mode()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the panel view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PanelSearchCompleted:
		if msg.Mode == v.panel.Mode() {
			v.handleSearchCompleted(msg)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input for the focused area.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	// The debug overlay swallows everything except its own toggle.
	if v.panel.DebugVisible() {
		if keymap.Matches(keyStr, v.keymap.Debug) || msg.Type == tea.KeyEsc {
			v.panel.ToggleDebug()
		}
		return v, nil
	}

	if v.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.submit()
		}
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyEsc {
			// Handled a level up.
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Hit or facet focus.
	switch {
	case keymap.Matches(keyStr, v.keymap.Debug):
		v.panel.ToggleDebug()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.NewSearch):
		v.focus = focusInput
		return v, v.input.Focus()

	case keymap.Matches(keyStr, v.keymap.Facets):
		if v.focus == focusFacets {
			v.focus = focusHits
		} else {
			v.focus = focusFacets
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		v.moveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.moveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ClearFacets):
		v.panel.ClearFacets()
		v.facets.SetSelection(nil)
		return v, v.submitCmd()
	}

	if v.focus == focusFacets && keymap.Matches(keyStr, v.keymap.ToggleFacet) {
		play := v.facets.CursorFacet()
		if play == "" {
			return v, nil
		}
		// Every toggle resubmits exactly once.
		v.panel.ToggleFacet(play)
		v.facets.SetSelection(v.panel.SelectedPlays())
		return v, v.submitCmd()
	}

	if v.focus == focusHits && msg.Type == tea.KeyEnter {
		if hit := v.hits.SelectedHit(); hit != nil {
			lineID := hit.LineID
			return v, func() tea.Msg {
				return messages.LineSelected{LineID: lineID}
			}
		}
	}

	return v, nil
}

// submit captures the typed query and runs a submission.
func (v *View) submit() tea.Cmd {
	v.panel.SetQuery(v.input.Value())
	v.focus = focusHits
	v.input.Blur()
	return v.submitCmd()
}

// submitCmd runs the panel submission as a background command.
func (v *View) submitCmd() tea.Cmd {
	v.searching = true
	mode := v.panel.Mode()
	panel := v.panel
	ctx := v.ctx

	return func() tea.Msg {
		resp, err := panel.Submit(ctx)
		return messages.PanelSearchCompleted{Mode: mode, Response: resp, Err: err}
	}
}

// handleSearchCompleted applies a finished submission.
func (v *View) handleSearchCompleted(msg messages.PanelSearchCompleted) {
	// A superseded submission already has a newer one in flight;
	// dropping it keeps the panel consistent with the last submit.
	if errors.Is(msg.Err, domain.ErrStaleResponse) {
		return
	}

	v.searching = false

	if msg.Err != nil {
		v.err = msg.Err
		return
	}

	v.err = nil
	v.hits.SetResponse(msg.Response)
	v.facets.SetFacets(msg.Response.Aggregations.Plays)
	v.facets.SetSelection(v.panel.SelectedPlays())
}

// moveUp routes an up key to the focused list.
func (v *View) moveUp() {
	if v.focus == focusFacets {
		v.facets.MoveUp()
	} else {
		v.hits.MoveUp()
	}
}

// moveDown routes a down key to the focused list.
func (v *View) moveDown() {
	if v.focus == focusFacets {
		v.facets.MoveDown()
	} else {
		v.hits.MoveDown()
	}
}

// View renders the panel.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	title := v.panel.Mode().Description()
	if v.active {
		sections = append(sections, v.styles.Title.Render(title))
	} else {
		sections = append(sections, v.styles.Muted.Render(title))
	}
	sections = append(sections, v.input.View(), "")

	switch {
	case v.panel.DebugVisible():
		sections = append(sections, v.renderDebug())
	case v.searching:
		sections = append(sections, v.styles.Muted.Render("Searching..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	default:
		body := lipgloss.JoinHorizontal(
			lipgloss.Top,
			v.hits.View(),
			"  ",
			v.facets.View(),
		)
		sections = append(sections, body)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	frame := v.styles.Panel
	if v.active {
		frame = v.styles.ActivePanel
	}
	return frame.Width(v.width - 2).Render(content)
}

// renderDebug renders the backend query overlay.
func (v *View) renderDebug() string {
	query := v.panel.DebugQuery()
	if query == "" {
		return v.styles.Muted.Render("No backend query captured yet")
	}

	header := v.styles.Subtitle.Render("Backend query")
	body := v.styles.Debug.Render(truncateLines(query, v.height-8))
	return header + "\n" + body
}

// truncateLines caps a block of text to a number of lines.
func truncateLines(text string, max int) string {
	if max < 3 {
		max = 3
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[:max], "\n") + "\n..."
}

// SetActive marks whether this panel has focus in the dual view.
func (v *View) SetActive(active bool) tea.Cmd {
	v.active = active
	if active && v.focus == focusInput {
		return v.input.Focus()
	}
	v.input.Blur()
	return nil
}

// Active reports whether this panel has focus.
func (v *View) Active() bool {
	return v.active
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.input.SetWidth(width - 6)
	facetWidth := width / 3
	if facetWidth < 20 {
		facetWidth = 20
	}
	v.hits.SetDimensions(width-facetWidth-8, height-8)
	v.facets.SetDimensions(facetWidth, height-8)
}

// DebugOpen reports whether the backend query overlay is showing.
func (v *View) DebugOpen() bool {
	return v.panel.DebugVisible()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Searching reports whether a submission is in flight.
func (v *View) Searching() bool {
	return v.searching
}

// InputFocused returns whether the query input has focus.
func (v *View) InputFocused() bool {
	return v.focus == focusInput
}

// Reset returns the panel to input mode with a cleared query.
func (v *View) Reset() {
	v.focus = focusInput
	v.input.Focus()
	v.input.SetValue("")
	v.hits.SetResponse(nil)
	v.facets.SetFacets(nil)
	v.facets.SetSelection(nil)
	v.err = nil
	v.searching = false
}
