package tui

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("tui: parse service is required")

// ErrMissingSource is returned when no export source is given.
var ErrMissingSource = errors.New("tui: export source is required")
