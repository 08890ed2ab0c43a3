package tui

import "errors"

// ErrMissingSparsePanel is returned when the sparse panel session is not provided.
var ErrMissingSparsePanel = errors.New("tui: sparse panel session is required")

// ErrMissingDensePanel is returned when the dense panel session is not provided.
var ErrMissingDensePanel = errors.New("tui: dense panel session is required")
