// Package facets provides the play facet list component for the TUI.
package facets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/folio-labs/folio-cli/internal/adapters/driving/tui/styles"
	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// FacetList displays the play facet buckets with checkboxes. The
// buckets come from the last search response; which ones are checked
// is owned by the panel session, so the component is handed the
// selection on every render.
type FacetList struct {
	facets   []domain.FacetCount
	selected map[string]bool
	cursor   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewFacetList creates a new facet list component.
func NewFacetList(s *styles.Styles) *FacetList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FacetList{
		selected: make(map[string]bool),
		styles:   s,
		width:    30,
		height:   12,
	}
}

// Init initialises the facet list.
func (f *FacetList) Init() tea.Cmd {
	return nil
}

// Update handles facet navigation messages.
func (f *FacetList) Update(msg tea.Msg) (*FacetList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			f.MoveUp()
		case tea.KeyDown:
			f.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			f.MoveUp()
		case "j":
			f.MoveDown()
		}
	}
	return f, nil
}

// View renders the facet list.
func (f *FacetList) View() string {
	if len(f.facets) == 0 {
		return f.styles.Muted.Render("No plays")
	}

	lines := make([]string, 0, len(f.facets)+2)
	lines = append(lines, f.styles.Subtitle.Render("Plays"), "")

	visibleCount := f.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if f.cursor >= visibleCount {
		start = f.cursor - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(f.facets) {
		end = len(f.facets)
	}

	for i := start; i < end; i++ {
		lines = append(lines, f.renderFacet(i, f.facets[i]))
	}

	return strings.Join(lines, "\n")
}

// renderFacet formats one facet row as a checkbox with a count.
func (f *FacetList) renderFacet(index int, facet domain.FacetCount) string {
	indicator := "  "
	if index == f.cursor {
		indicator = "> "
	}

	box := "[ ]"
	if f.selected[facet.Name] {
		box = "[x]"
	}

	name := facet.Name
	maxLen := f.width - 12
	if maxLen < 10 {
		maxLen = 10
	}
	if len(name) > maxLen {
		name = name[:maxLen-3] + "..."
	}

	row := fmt.Sprintf("%s%s %s (%d)", indicator, box, name, facet.Count)

	switch {
	case index == f.cursor:
		return f.styles.Selected.Render(row)
	case f.selected[facet.Name]:
		return f.styles.FacetOn.Render(row)
	default:
		return f.styles.Normal.Render(row)
	}
}

// SetFacets replaces the facet buckets, keeping the cursor in range.
func (f *FacetList) SetFacets(facets []domain.FacetCount) {
	f.facets = facets
	if f.cursor >= len(facets) {
		f.cursor = 0
	}
}

// SetSelection replaces the checked set from the panel's facet filter.
func (f *FacetList) SetSelection(plays []string) {
	f.selected = make(map[string]bool, len(plays))
	for _, play := range plays {
		f.selected[play] = true
	}
}

// Facets returns the current buckets.
func (f *FacetList) Facets() []domain.FacetCount {
	return f.facets
}

// CursorFacet returns the facet under the cursor, or "" when empty.
func (f *FacetList) CursorFacet() string {
	if len(f.facets) == 0 || f.cursor < 0 || f.cursor >= len(f.facets) {
		return ""
	}
	return f.facets[f.cursor].Name
}

// Cursor returns the cursor index.
func (f *FacetList) Cursor() int {
	return f.cursor
}

// MoveUp moves the cursor up.
func (f *FacetList) MoveUp() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// MoveDown moves the cursor down.
func (f *FacetList) MoveDown() {
	if f.cursor < len(f.facets)-1 {
		f.cursor++
	}
}

// SetDimensions sets the component dimensions.
func (f *FacetList) SetDimensions(width, height int) {
	f.width = width
	f.height = height
}

// IsEmpty returns whether there are any buckets.
func (f *FacetList) IsEmpty() bool {
	return len(f.facets) == 0
}
