package transacting

import "errors"

var (
	// ErrDatabaseNotConfigured means no backing store is available to
	// verify ownership and record the transaction.
	ErrDatabaseNotConfigured = errors.New("backing store not configured")

	// ErrInvalidPayload wraps schema validation failures.
	ErrInvalidPayload = errors.New("invalid transaction payload")

	// ErrClientNotFound covers both an unknown client and one owned by
	// another advisor; callers cannot tell the two apart.
	ErrClientNotFound = errors.New("client not found or access denied")

	// ErrPartnerNotConfigured means the partner API key is absent.
	ErrPartnerNotConfigured = errors.New("partner API not configured")
)
