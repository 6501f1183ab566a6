package types

import "errors"

// Sentinel errors for the generation pipeline. Wrap with fmt.Errorf("...: %w")
// and match with errors.Is at the handler boundary.
var (
	// ErrValidation marks a request or itinerary that failed its structural
	// invariants. Surfaced before any upstream work when possible.
	ErrValidation = errors.New("validation failed")

	// ErrModelOutput marks a model response that could not be parsed into the
	// expected itinerary shape. Distinct from transport failures.
	ErrModelOutput = errors.New("unparseable model output")

	// ErrItineraryInvalid marks a parsed itinerary whose fields fail the
	// document invariants. Distinct from ErrModelOutput so callers can tell
	// a parse failure from a construction failure.
	ErrItineraryInvalid = errors.New("invalid itinerary document")

	// ErrUpstream marks a transport-level failure reaching the places API or
	// the model endpoint. Clean non-OK upstream statuses are not errors; they
	// degrade to empty results.
	ErrUpstream = errors.New("upstream request failed")
)
