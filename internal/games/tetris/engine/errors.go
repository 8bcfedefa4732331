package engine

import "errors"

var (
	// ErrInvalidDimensions is returned when a session is configured with a
	// board too small to hold a piece.
	ErrInvalidDimensions = errors.New("engine: invalid playfield dimensions")

	// ErrUnknownWeights is returned for an unrecognized weights preset name.
	ErrUnknownWeights = errors.New("engine: unknown weights preset")
)
