package builder

import "errors"

// Sentinel errors. Constructors wrap them with the method name and the
// offending parameter; branch with errors.Is.
var (
	// ErrTooFewVertices is returned when a size parameter is below the
	// topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyVertices is returned when a preset would exceed core.MaxVertices.
	ErrTooManyVertices = errors.New("builder: too many vertices")

	// ErrInvalidProbability is returned for an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed is returned for a nil or empty constructor list.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownTopology is returned by Parse for an unrecognised name.
	ErrUnknownTopology = errors.New("builder: unknown topology")

	// ErrBadSize is returned by Parse for malformed size arguments.
	ErrBadSize = errors.New("builder: invalid size")
)
