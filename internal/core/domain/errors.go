package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownMode indicates a retrieval mode that is neither
	// sparse nor dense.
	ErrUnknownMode = errors.New("unknown search mode")

	// ErrStaleResponse indicates a search response arrived after a
	// newer submission on the same panel. Callers discard the
	// response instead of rendering it.
	ErrStaleResponse = errors.New("stale search response")

	// ErrGatewayUnavailable indicates the search gateway is not
	// configured. Every search operation requires it.
	ErrGatewayUnavailable = errors.New("search gateway unavailable")
)
