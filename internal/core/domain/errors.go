package domain

import "go.trai.ch/zerr"

var (
	// ErrNoRoots is returned when a configuration declares no scan roots.
	ErrNoRoots = zerr.New("no scan roots configured")

	// ErrInvalidThreshold is returned when the narrow threshold is not positive.
	ErrInvalidThreshold = zerr.New("threshold must be positive")

	// ErrTargetRequired is returned when a decision is requested without a target file.
	ErrTargetRequired = zerr.New("target file required")

	// ErrTargetUnreadable marks a graph build that could not read the
	// target file itself. The policy layer fails safe to FULL on it.
	ErrTargetUnreadable = zerr.New("target file unreadable during graph build")
)
