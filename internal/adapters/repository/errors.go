package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrUnknownAthlete = errors.New("athlete not found")
	ErrUnreadable     = errors.New("record store unreadable")
)
