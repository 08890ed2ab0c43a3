// Package search provides the dual-panel search view for the TUI.
// The sparse and dense panels sit side by side so the two retrieval
// modes can be compared for the same query.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/components/status"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/keymap"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/views/panel"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// View holds the two search panels and a shared status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	sparse    *panel.View
	dense     *panel.View
	statusbar *status.Bar

	activeDense bool
	width       int
	height      int
	ready       bool
}

// NewView creates the dual-panel search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	sparseSession driving.PanelService,
	denseSession driving.PanelService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		sparse:    panel.NewView(s, km, sparseSession),
		dense:     panel.NewView(s, km, denseSession),
		statusbar: status.NewBar(s, km),
		width:     120,
		height:    30,
	}
	v.sparse.SetActive(true)
	v.dense.SetActive(false)

	return v
}

// WithContext sets the context used for submissions.
func (v *View) WithContext(ctx context.Context) *View {
	v.sparse.WithContext(ctx)
	v.dense.WithContext(ctx)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.sparse.Init(), v.dense.Init())
}

// active returns the focused panel.
func (v *View) active() *panel.View {
	if v.activeDense {
		return v.dense
	}
	return v.sparse
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PanelSearchCompleted:
		// Both panels see the message; each applies only its own mode.
		var sparseCmd, denseCmd tea.Cmd
		v.sparse, sparseCmd = v.sparse.Update(msg)
		v.dense, denseCmd = v.dense.Update(msg)
		v.syncStatus()
		return v, tea.Batch(sparseCmd, denseCmd)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc closes the debug overlay when one is open, otherwise it
	// leaves the view.
	if msg.Type == tea.KeyEsc {
		if v.active().DebugOpen() {
			var cmd tea.Cmd
			if v.activeDense {
				v.dense, cmd = v.dense.Update(msg)
			} else {
				v.sparse, cmd = v.sparse.Update(msg)
			}
			return v, cmd
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Tab moves focus between the panels.
	if msg.Type == tea.KeyTab {
		v.activeDense = !v.activeDense
		sparseCmd := v.sparse.SetActive(!v.activeDense)
		denseCmd := v.dense.SetActive(v.activeDense)
		return v, tea.Batch(sparseCmd, denseCmd)
	}

	var cmd tea.Cmd
	if v.activeDense {
		v.dense, cmd = v.dense.Update(msg)
	} else {
		v.sparse, cmd = v.sparse.Update(msg)
	}
	v.syncStatus()
	return v, cmd
}

// syncStatus reflects the active panel's state in the status bar.
func (v *View) syncStatus() {
	active := v.active()

	switch {
	case active.Searching():
		v.statusbar.SetState(status.StateSearching)
	case active.Err() != nil:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(active.Err().Error())
	default:
		v.statusbar.SetState(status.StateResults)
	}
}

// View renders both panels side by side with the status bar below.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.sparse.View(),
		v.dense.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panels,
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	panelWidth := width / 2
	v.sparse.SetDimensions(panelWidth, height-3)
	v.dense.SetDimensions(panelWidth, height-3)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// ActiveDense reports whether the dense panel has focus.
func (v *View) ActiveDense() bool {
	return v.activeDense
}

// Sparse returns the sparse panel view.
func (v *View) Sparse() *panel.View {
	return v.sparse
}

// Dense returns the dense panel view.
func (v *View) Dense() *panel.View {
	return v.dense
}

// Reset returns both panels to input mode.
func (v *View) Reset() {
	v.sparse.Reset()
	v.dense.Reset()
	v.activeDense = false
	v.sparse.SetActive(true)
	v.dense.SetActive(false)
	v.statusbar.Clear()
}
