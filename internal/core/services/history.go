package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driven"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryLimit is how many entries List returns when the
// caller does not say.
const DefaultHistoryLimit = 50

// HistoryService records past search submissions in a local store.
// The store is optional; without one the service is a no-op.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record stores a submitted search and its match count.
func (s *HistoryService) Record(
	ctx context.Context, mode domain.SearchMode, req domain.SearchRequest, total int,
) error {
	if s.store == nil {
		return nil
	}

	plays := make([]string, len(req.SelectedPlays))
	copy(plays, req.SelectedPlays)

	entry := domain.HistoryEntry{
		ID:            uuid.New().String(),
		Mode:          mode,
		Query:         req.Query,
		SelectedPlays: plays,
		Total:         total,
		CreatedAt:     time.Now().UTC(),
	}

	return s.store.Add(ctx, entry)
}

// List returns the most recent entries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.List(ctx, limit)
}

// Clear removes all recorded entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}
