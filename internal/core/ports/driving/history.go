package driving

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// HistoryService records and lists past search submissions.
type HistoryService interface {
	// Record stores a submitted search and the match count it
	// produced.
	Record(ctx context.Context, mode domain.SearchMode, req domain.SearchRequest, total int) error

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all recorded entries.
	Clear(ctx context.Context) error
}
