package driven

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// HistoryStore persists search history locally.
type HistoryStore interface {
	// Add stores an entry.
	Add(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first, up to
	// limit. A non-positive limit applies the store's default.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
