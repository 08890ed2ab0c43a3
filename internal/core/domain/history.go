package domain

import "time"

// HistoryEntry records one successful search submission.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Mode is the retrieval mode the search targeted.
	Mode SearchMode

	// Query is the submitted query text.
	Query string

	// SelectedPlays is the facet filter at submission time.
	SelectedPlays []string

	// Total is the match count the service reported.
	Total int

	// CreatedAt is when the search was submitted.
	CreatedAt time.Time
}
