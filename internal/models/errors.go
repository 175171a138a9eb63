package models

import "errors"

// Upstream error kinds. Clients wrap exactly one of these so callers can
// classify failures with errors.Is.
var (
	// ErrNotFound means the data source has nothing for the query
	ErrNotFound = errors.New("location not found")

	// ErrNoPriorityMatch means a Hangul query matched no Korean candidate
	ErrNoPriorityMatch = errors.New("no Korean location matches the query")

	// ErrUpstreamUnavailable covers transport failures and unexpected statuses
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUnauthorized means the API key is missing or invalid
	ErrUnauthorized = errors.New("API key rejected")
)
