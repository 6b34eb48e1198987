package orchestrate

import "errors"

// Common Orchestrator errors (spec §7).
var (
	// ErrNoResult indicates recognition produced no surviving branches.
	// Surfaced to callers as "no match", never as a fatal condition.
	ErrNoResult = errors.New("orchestrate: no result")

	// ErrMalformedInput indicates the raw input resolved to no symbols
	// recognizable in the store's vocabulary; spec §7 treats this as a
	// NoResult, not a distinct failure mode.
	ErrMalformedInput = errors.New("orchestrate: malformed input")
)
