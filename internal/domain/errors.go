package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrBadTransition indicates a status change that skips ahead or moves
	// backwards while strict status flow is enabled.
	ErrBadTransition = errors.New("invalid status transition")

	// ErrInvalid tags validation failures caused by caller input, as opposed
	// to internal failures.
	ErrInvalid = errors.New("invalid input")
)
