package driven

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// SearchGateway talks to the remote search service. The service owns
// the index, the embedding models, and the query DSL; the gateway only
// moves JSON across HTTP.
type SearchGateway interface {
	// Search posts a request to the endpoint for the given mode and
	// decodes the response. A non-2xx status yields an error carrying
	// the server-supplied message verbatim.
	Search(ctx context.Context, mode domain.SearchMode, req domain.SearchRequest) (*domain.SearchResponse, error)

	// Line fetches a single corpus line by ID. Returns
	// domain.ErrNotFound when the line does not exist.
	Line(ctx context.Context, lineID int) (*domain.PlayLine, error)

	// Context fetches the lines surrounding lineID within playName,
	// size lines either side, in line order.
	Context(ctx context.Context, playName string, lineID, size int) ([]domain.PlayLine, error)
}
