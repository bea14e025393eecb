package domain

import "errors"

var (
	// ErrSessionConflict is returned when a clock-in would give a worker a
	// second open session.
	ErrSessionConflict = errors.New("worker already has an open session")

	// ErrInvalidTransition is returned when a session transition is attempted
	// from a state that forbids it.
	ErrInvalidTransition = errors.New("invalid session state transition")
)
