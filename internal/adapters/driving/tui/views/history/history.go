// Package history lists past searches recorded by the history service.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/messages"
	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// listLimit is how many entries the view loads at once.
const listLimit = 50

// View renders the recorded searches, newest first.
type View struct {
	styles  *styles.Styles
	service driving.HistoryService
	ctx     context.Context

	entries []domain.HistoryEntry
	offset  int
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a history view.
func NewView(s *styles.Styles, service driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil

	service := v.service
	ctx := v.ctx

	return func() tea.Msg {
		if service == nil {
			return messages.HistoryLoaded{Entries: nil}
		}
		entries, err := service.List(ctx, listLimit)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.entries = msg.Entries
		v.offset = 0
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		switch msg.String() {
		case "up", "k":
			if v.offset > 0 {
				v.offset--
			}
		case "down", "j":
			if v.offset < len(v.entries)-1 {
				v.offset++
			}
		}
		return v, nil
	}

	return v, nil
}

// View renders the history list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Search History"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No searches recorded"))
	default:
		b.WriteString(v.renderEntries())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [esc] Back to menu"))

	return b.String()
}

// renderEntries renders the visible slice of entries.
func (v *View) renderEntries() string {
	visible := v.height - 6
	if visible < 5 {
		visible = 5
	}

	end := v.offset + visible
	if end > len(v.entries) {
		end = len(v.entries)
	}

	rendered := make([]string, 0, visible)
	for i := v.offset; i < end; i++ {
		entry := &v.entries[i]

		query := entry.Query
		if query == "" {
			query = "(match all)"
		}

		row := fmt.Sprintf("%s  %-6s  %-40q  %d matches",
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			entry.Mode,
			query,
			entry.Total,
		)
		rendered = append(rendered, v.styles.Normal.Render(row))

		if len(entry.SelectedPlays) > 0 {
			rendered = append(rendered, v.styles.Muted.Render(
				"                  plays: "+strings.Join(entry.SelectedPlays, ", "),
			))
		}
	}

	return strings.Join(rendered, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
