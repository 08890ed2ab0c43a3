// Package hits provides the search hit list component for the TUI.
package hits

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// HitList displays search hits in a navigable list. Each hit shows
// the play name, the speaker (or the narrative label), and a snippet.
type HitList struct {
	hits     []domain.Hit
	total    int
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewHitList creates a new hit list component.
func NewHitList(s *styles.Styles) *HitList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &HitList{
		styles: s,
		width:  60,
		height: 12,
	}
}

// Init initialises the hit list.
func (h *HitList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (h *HitList) Update(msg tea.Msg) (*HitList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			h.MoveUp()
		case tea.KeyDown:
			h.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			h.MoveUp()
		case "j":
			h.MoveDown()
		}
	}
	return h, nil
}

// View renders the hit list.
func (h *HitList) View() string {
	if len(h.hits) == 0 {
		return h.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(h.hits)*2+2)

	header := h.styles.Subtitle.Render(fmt.Sprintf("%d matches", h.total))
	lines = append(lines, header, "")

	// Each hit takes two lines.
	visibleCount := (h.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if h.selected >= visibleCount {
		start = h.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(h.hits) {
		end = len(h.hits)
	}

	for i := start; i < end; i++ {
		lines = append(lines, h.renderHit(i, &h.hits[i]))
	}

	return strings.Join(lines, "\n")
}

// renderHit formats a single hit as a two-line card.
func (h *HitList) renderHit(index int, hit *domain.Hit) string {
	indicator := "  "
	if index == h.selected {
		indicator = "> "
	}

	heading := hit.PlayName
	speaker := hit.SpeakerLabel()

	var headLine string
	if index == h.selected {
		headLine = h.styles.Selected.Render(fmt.Sprintf("%s%s  %s", indicator, heading, speaker))
	} else {
		headLine = h.styles.Normal.Render(indicator+heading+"  ") +
			h.styles.Speaker.Render(speaker)
	}

	snippet := hit.Snippet()
	maxLen := h.width - 6
	if maxLen < 20 {
		maxLen = 20
	}
	if len(snippet) > maxLen {
		snippet = snippet[:maxLen-3] + "..."
	}

	return headLine + "\n" + h.styles.Muted.Render("    "+snippet)
}

// SetResponse replaces the list contents from a search response.
func (h *HitList) SetResponse(resp *domain.SearchResponse) {
	if resp == nil {
		h.hits = nil
		h.total = 0
	} else {
		h.hits = resp.Hits
		h.total = resp.Total
	}
	h.selected = 0
}

// Hits returns the current hits.
func (h *HitList) Hits() []domain.Hit {
	return h.hits
}

// Total returns the total match count from the last response.
func (h *HitList) Total() int {
	return h.total
}

// Selected returns the index of the selected hit.
func (h *HitList) Selected() int {
	return h.selected
}

// SelectedHit returns the currently selected hit, or nil if none.
func (h *HitList) SelectedHit() *domain.Hit {
	if len(h.hits) == 0 || h.selected < 0 || h.selected >= len(h.hits) {
		return nil
	}
	return &h.hits[h.selected]
}

// MoveUp moves selection up.
func (h *HitList) MoveUp() {
	if h.selected > 0 {
		h.selected--
	}
}

// MoveDown moves selection down.
func (h *HitList) MoveDown() {
	if h.selected < len(h.hits)-1 {
		h.selected++
	}
}

// SetDimensions sets the component dimensions.
func (h *HitList) SetDimensions(width, height int) {
	h.width = width
	h.height = height
}

// Count returns the number of hits on this page.
func (h *HitList) Count() int {
	return len(h.hits)
}

// IsEmpty returns whether the list is empty.
func (h *HitList) IsEmpty() bool {
	return len(h.hits) == 0
}
