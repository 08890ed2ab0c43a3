package driving

import (
	"context"

	"github.com/folio-labs/folio-cli/internal/core/domain"
)

// PanelService drives one search panel. A panel owns its query text,
// facet selection, last request/response, and debug view state; the
// sparse and dense panels are two independent instances of the same
// implementation.
type PanelService interface {
	// Mode returns the retrieval mode this panel targets.
	Mode() domain.SearchMode

	// Query returns the current query text.
	Query() string

	// SetQuery replaces the current query text.
	SetQuery(query string)

	// SelectedPlays returns the facet filter in toggle order.
	// The returned slice is a copy.
	SelectedPlays() []string

	// ToggleFacet flips membership of a play in the facet filter and
	// reports whether the play is selected afterwards. Selecting
	// appends; deselecting removes without disturbing the order of
	// the remaining entries.
	ToggleFacet(play string) bool

	// ClearFacets deselects every play.
	ClearFacets()

	// SetPageSize overrides how many hits a submission asks for.
	// Non-positive values reset to the default.
	SetPageSize(size int)

	// Submit sends the current query and facet filter to the search
	// service and returns the response. When a newer submission was
	// issued on this panel while the call was in flight, the response
	// is discarded and domain.ErrStaleResponse is returned.
	Submit(ctx context.Context) (*domain.SearchResponse, error)

	// LastRequest returns the most recently submitted request, or nil
	// before the first submission. Retained for display only.
	LastRequest() *domain.SearchRequest

	// LastResponse returns the most recently accepted response, or
	// nil when none has been accepted yet.
	LastResponse() *domain.SearchResponse

	// ToggleDebug flips the debug view visibility flag and returns
	// the new value.
	ToggleDebug() bool

	// DebugVisible reports whether the debug view is shown.
	DebugVisible() bool

	// DebugQuery returns the pretty-printed backend query from the
	// last accepted response, or an empty string.
	DebugQuery() string
}
