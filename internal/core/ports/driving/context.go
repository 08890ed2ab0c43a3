package driving

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// ContextService loads individual lines and their surrounding context.
type ContextService interface {
	// Line fetches a single line by its corpus line ID.
	Line(ctx context.Context, lineID int) (*domain.PlayLine, error)

	// Context fetches the lines surrounding lineID within a play,
	// size lines either side, in line order. The centre line has
	// IsCurrent set.
	Context(ctx context.Context, playName string, lineID, size int) ([]domain.PlayLine, error)

	// ContextForLine looks the line up first and then loads its
	// surrounding context, for callers that only know the line ID.
	ContextForLine(ctx context.Context, lineID, size int) ([]domain.PlayLine, error)
}
