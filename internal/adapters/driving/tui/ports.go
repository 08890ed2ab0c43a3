// Package tui provides the interactive terminal user interface for
// Folio. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sparse is the panel session for sparse vector search.
	Sparse driving.PanelService

	// Dense is the panel session for dense vector search.
	Dense driving.PanelService

	// Context loads lines and their surrounding context. Optional;
	// without it the line view is unavailable.
	Context driving.ContextService

	// History lists recorded searches. Optional; without it the
	// history view shows nothing.
	History driving.HistoryService
}

// NewPorts creates a Ports aggregate with the two panel sessions.
func NewPorts(sparse, dense driving.PanelService) *Ports {
	return &Ports{
		Sparse: sparse,
		Dense:  dense,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Sparse == nil {
		return ErrMissingSparsePanel
	}
	if p.Dense == nil {
		return ErrMissingDensePanel
	}
	return nil
}
