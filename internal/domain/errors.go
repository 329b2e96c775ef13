package domain

import "errors"

var (
	// ErrMalformedRecord marks a provider record that cannot be mapped into a
	// domain entity. Ingestion skips the record and continues.
	ErrMalformedRecord = errors.New("malformed provider record")

	// ErrProviderUnavailable marks an external provider call that failed after
	// all retries.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrConflictingRun is returned when a pipeline run is requested while
	// another one holds the execution token.
	ErrConflictingRun = errors.New("pipeline run already in progress")

	ErrCandidateNotFound = errors.New("candidate not found")
)
