package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrMissingAthlete   = errors.New("missing athlete parameter")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
