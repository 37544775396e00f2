package mmc

import "errors"

// Sentinel errors for package mmc. Query-time precondition violations
// (spec.md §7) deliberately do NOT use these: they return documented
// zero values instead of erroring, matching the rest of the engine's
// "no error is retried, no partial failure is surfaced" contract.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a Karp constructor.
	ErrNilGraph = errors.New("mmc: graph is nil")

	// ErrNilLengthMap indicates a nil LengthMap was passed to a Karp constructor.
	ErrNilLengthMap = errors.New("mmc: length map is nil")

	// ErrNilTolerance indicates WithTolerance was called with a nil Tolerance.
	ErrNilTolerance = errors.New("mmc: tolerance is nil")
)
