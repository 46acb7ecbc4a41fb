package mediator

import "errors"

// Sentinel errors. Outside strict mode only configuration errors are ever returned.
var (
	// ErrChannelNotFound is returned in strict mode when the namespace does not resolve to an existing channel.
	ErrChannelNotFound = errors.New("mediator: channel not found")

	// ErrSubscriberNotFound is returned in strict mode when no subscriber matches the identifier.
	ErrSubscriberNotFound = errors.New("mediator: subscriber not found")

	// ErrInvalidDelimiter is returned when the hierarchy delimiter is not exactly one character.
	ErrInvalidDelimiter = errors.New("mediator: delimiter must be a single character")

	// ErrInvalidIDFormat is returned when Config.IDFormat names an unknown generator.
	ErrInvalidIDFormat = errors.New("mediator: unknown id format")
)
