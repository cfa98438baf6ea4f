package domain

import "errors"

// Error taxonomy. Every failure surfaced to a caller wraps one of these, so
// handlers can map them to a stable problem response and callers know which
// ones are retryable.
var (
	// ErrInvalidState: a lifecycle precondition did not hold (order not open,
	// table not referencing the order). Never retried blindly; the caller must
	// re-read state first.
	ErrInvalidState = errors.New("invalid state")

	// ErrMissingContext: tenant/branch identifiers absent or unresolvable.
	ErrMissingContext = errors.New("missing tenant or branch context")

	// ErrCommitFailed: the store did not apply the transaction. Safe to retry
	// from the precondition check, which makes the operation idempotent.
	ErrCommitFailed = errors.New("commit failed")

	// ErrMalformedForecast: the forecast oracle returned data that does not
	// decode into a usable series. Nothing is partially returned.
	ErrMalformedForecast = errors.New("malformed forecast payload")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)
