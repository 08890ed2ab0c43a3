// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the dual-panel search view.
	ViewSearch
	// ViewLine shows a hit in the context of its play.
	ViewLine
	// ViewHistory lists past searches.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewLine:
		return "line"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// PanelSearchCompleted carries a search response back to the panel
// that submitted it. Mode routes the message to the right panel; a
// superseded submission arrives with Err set to
// domain.ErrStaleResponse and is dropped by the panel view.
type PanelSearchCompleted struct {
	Mode     domain.SearchMode
	Response *domain.SearchResponse
	Err      error
}

// LineSelected is sent when a hit is chosen for context display.
type LineSelected struct {
	LineID int
}

// LineContextLoaded carries the lines surrounding a selected hit.
type LineContextLoaded struct {
	Lines []domain.PlayLine
	Err   error
}

// HistoryLoaded carries the recorded searches.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
