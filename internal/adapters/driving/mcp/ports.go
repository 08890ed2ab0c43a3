package mcp

import (
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sparse is the panel session for sparse vector (ELSER) retrieval.
	Sparse driving.PanelService

	// Dense is the panel session for dense vector (E5) retrieval.
	Dense driving.PanelService

	// Context loads lines and their surrounding context.
	Context driving.ContextService
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
	// Context is optional; the line tools report unavailability.
	return nil
}
