// Package domain defines the core business entities for Folio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchMode: Which retrieval mode a panel talks to (sparse or dense)
//   - SearchRequest: The JSON body posted to the search service
//   - SearchResponse: Hits, facet counts and the echoed backend query
//   - PlayLine: A single line of a play, also used for context windows
//   - HistoryEntry: A recorded search submission
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
