// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Pipeline error classes. Ingestion and extraction failures are terminal
// for a run; generation-task failures are contained by the best-effort
// join and surface as error artifacts instead.
var (
	// ErrUnsupportedFormat marks a file whose extension is not handled.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrParseFailure marks a document that could not be decoded.
	ErrParseFailure = errors.New("document parse failure")

	// ErrContentTooShort marks normalized text below the minimum length.
	ErrContentTooShort = errors.New("document content too short")

	// ErrExtractionFailure marks a failed or undecodable extraction call.
	ErrExtractionFailure = errors.New("knowledge extraction failure")

	// ErrEmptyKnowledge marks an extraction that yielded zero usable concepts.
	ErrEmptyKnowledge = errors.New("extraction yielded no concepts")

	// ErrGenerationTask marks a failed generation task.
	ErrGenerationTask = errors.New("generation task failure")
)

// ProviderError wraps a failed call to an external model provider with
// enough context to tell an outage apart from malformed input.
type ProviderError struct {
	// Provider names the upstream service (e.g. "groq").
	Provider string

	// StatusCode is the upstream HTTP status, or 0 for transport errors.
	StatusCode int

	// Message is the upstream error message or response body excerpt.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s provider returned %d: %s", e.Provider, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s provider call failed: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s provider call failed: %s", e.Provider, e.Message)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// UserCorrectable reports whether the error is something the caller can
// fix by changing their input, as opposed to a provider or internal
// failure.
func UserCorrectable(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrContentTooShort) ||
		errors.Is(err, ErrParseFailure)
}
