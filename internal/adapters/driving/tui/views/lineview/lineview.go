// Package lineview shows a hit in the context of its play: the lines
// before and after it, in reading order, with the hit marked.
package lineview

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

// contextWindow is how many lines either side the view requests; a
// full window does not fit a terminal, scrolling covers the rest.
const contextWindow = 15

// View renders the surrounding context for one corpus line.
type View struct {
	styles  *styles.Styles
	service driving.ContextService
	ctx     context.Context

	lineID  int
	lines   []domain.PlayLine
	offset  int
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a line context view.
func NewView(s *styles.Styles, service driving.ContextService) *View {
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

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Load starts loading context for a line.
func (v *View) Load(lineID int) tea.Cmd {
	v.lineID = lineID
	v.lines = nil
	v.offset = 0
	v.err = nil
	v.loading = true

	service := v.service
	ctx := v.ctx

	return func() tea.Msg {
		if service == nil {
			return messages.LineContextLoaded{Err: domain.ErrGatewayUnavailable}
		}
		lines, err := service.ContextForLine(ctx, lineID, contextWindow)
		return messages.LineContextLoaded{Lines: lines, Err: err}
	}
}

// Update handles messages for the line view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LineContextLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.lines = msg.Lines
		v.centreOnCurrent()
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		}
		switch msg.String() {
		case "up", "k":
			if v.offset > 0 {
				v.offset--
			}
		case "down", "j":
			if v.offset < len(v.lines)-1 {
				v.offset++
			}
		}
		return v, nil
	}

	return v, nil
}

// centreOnCurrent scrolls so the marked line sits in view.
func (v *View) centreOnCurrent() {
	for i := range v.lines {
		if v.lines[i].IsCurrent {
			half := v.visibleCount() / 2
			v.offset = i - half
			if v.offset < 0 {
				v.offset = 0
			}
			return
		}
	}
	v.offset = 0
}

func (v *View) visibleCount() int {
	count := v.height - 6
	if count < 5 {
		count = 5
	}
	return count
}

// View renders the context.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	playName := ""
	if len(v.lines) > 0 {
		playName = v.lines[0].PlayName
	}
	b.WriteString(v.styles.Title.Render("Context"))
	if playName != "" {
		b.WriteString("  " + v.styles.Subtitle.Render(playName))
	}
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("No context available"))
	default:
		b.WriteString(v.renderLines())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [esc] Back to search"))

	return b.String()
}

// renderLines renders the visible slice of the context window.
func (v *View) renderLines() string {
	visible := v.visibleCount()
	end := v.offset + visible
	if end > len(v.lines) {
		end = len(v.lines)
	}

	rendered := make([]string, 0, visible)
	for i := v.offset; i < end; i++ {
		line := &v.lines[i]

		marker := "  "
		if line.IsCurrent {
			marker = "> "
		}

		row := fmt.Sprintf("%s[%d] %-18s %s", marker, line.LineID, line.SpeakerLabel(), line.TextEntry)
		if line.IsCurrent {
			rendered = append(rendered, v.styles.Selected.Render(row))
		} else {
			rendered = append(rendered, v.styles.Normal.Render(row))
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

// LineID returns the line the view is centred on.
func (v *View) LineID() int {
	return v.lineID
}

// Lines returns the loaded context lines.
func (v *View) Lines() []domain.PlayLine {
	return v.lines
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
