package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Default request parameters. The search service pages results, but the
// client always asks for the first page of a fixed size.
const (
	// DefaultFrom is the result offset for a submission.
	DefaultFrom = 0

	// DefaultPageSize is the number of hits requested per submission.
	DefaultPageSize = 20
)

// NarrativeSpeaker is the display label for hits without a speaker,
// such as stage directions.
const NarrativeSpeaker = "Narrative"

// SearchMode identifies which retrieval mode a search targets.
// The modes are opaque to the client: sparse uses learned term-weight
// expansion (ELSER-style), dense uses embedding similarity (E5-style).
// Both are executed server-side against different endpoints.
type SearchMode string

const (
	// ModeSparse is sparse vector search.
	ModeSparse SearchMode = "sparse"

	// ModeDense is dense vector search.
	ModeDense SearchMode = "dense"
)

// ParseSearchMode converts a user-supplied string into a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sparse":
		return ModeSparse, nil
	case "dense":
		return ModeDense, nil
	default:
		return "", ErrUnknownMode
	}
}

// String returns the mode name.
func (m SearchMode) String() string {
	return string(m)
}

// Valid reports whether the mode is one of the known retrieval modes.
func (m SearchMode) Valid() bool {
	return m == ModeSparse || m == ModeDense
}

// Description returns a human-readable description of the mode.
func (m SearchMode) Description() string {
	switch m {
	case ModeSparse:
		return "sparse vector (ELSER)"
	case ModeDense:
		return "dense vector (E5)"
	default:
		return "unknown"
	}
}

// SearchRequest is the JSON body posted to the search service.
// Field order matters only for readability; names are part of the
// wire contract.
type SearchRequest struct {
	// Query is the trimmed search text. An empty query is valid and
	// matches everything, which makes facet-only browsing possible.
	Query string `json:"query"`

	// SelectedPlays filters hits to the named plays. Order is the
	// order the facets were toggled on; the list never contains
	// duplicates.
	SelectedPlays []string `json:"selected_plays"`

	// From is the result offset.
	From int `json:"from"`

	// Size is the page size.
	Size int `json:"size"`
}

// NewSearchRequest builds a request for the first page of results.
// The query is trimmed and the play list is copied so later facet
// toggles do not mutate an in-flight request body.
func NewSearchRequest(query string, selectedPlays []string) SearchRequest {
	plays := make([]string, len(selectedPlays))
	copy(plays, selectedPlays)

	return SearchRequest{
		Query:         strings.TrimSpace(query),
		SelectedPlays: plays,
		From:          DefaultFrom,
		Size:          DefaultPageSize,
	}
}

// Hit is a single search result line.
type Hit struct {
	// LineID identifies the line within the corpus.
	LineID int `json:"line_id"`

	// PlayName is the play the line belongs to.
	PlayName string `json:"play_name"`

	// Speaker is the character speaking the line. Empty for stage
	// directions and act/scene headings.
	Speaker string `json:"speaker,omitempty"`

	// TextEntry is the raw line text.
	TextEntry string `json:"text_entry"`

	// Highlight holds server-generated snippets with matched terms
	// marked up. Absent when the backend produced no highlight.
	Highlight []string `json:"highlight,omitempty"`
}

// SpeakerLabel returns the speaker, or NarrativeSpeaker when the hit
// has none.
func (h Hit) SpeakerLabel() string {
	if h.Speaker == "" {
		return NarrativeSpeaker
	}
	return h.Speaker
}

// Snippet returns the first highlight fragment, falling back to the
// raw line text when the backend sent no highlight.
func (h Hit) Snippet() string {
	if len(h.Highlight) > 0 {
		return h.Highlight[0]
	}
	return h.TextEntry
}

// FacetCount is one play facet with its match count.
type FacetCount struct {
	// Name is the play name.
	Name string `json:"name"`

	// Count is the number of matching lines in that play.
	Count int `json:"count"`
}

// Aggregations groups the facet buckets returned with a response.
type Aggregations struct {
	// Plays lists one bucket per play, in server order.
	Plays []FacetCount `json:"plays"`
}

// SearchResponse is the decoded body of a successful search.
type SearchResponse struct {
	// Total is the total number of matching lines, which can exceed
	// len(Hits) when results are paged.
	Total int `json:"total"`

	// Hits are the result lines in server ranking order.
	Hits []Hit `json:"hits"`

	// Aggregations carries the play facet counts.
	Aggregations Aggregations `json:"aggregations"`

	// BackendQuery is the query the service ran against its index,
	// echoed back for debugging. It is opaque to the client and held
	// only for display.
	BackendQuery json.RawMessage `json:"elasticsearch_query,omitempty"`
}

// Empty reports whether the response matched nothing.
func (r *SearchResponse) Empty() bool {
	return r.Total == 0
}

// PrettyBackendQuery returns the echoed backend query as indented
// JSON, or an empty string when the response carried none.
func (r *SearchResponse) PrettyBackendQuery() string {
	if len(r.BackendQuery) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, r.BackendQuery, "", "  "); err != nil {
		// Malformed echo; show it raw rather than hiding it.
		return string(r.BackendQuery)
	}
	return buf.String()
}
