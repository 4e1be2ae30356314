package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys so that a retried create does not
// produce a second ledger row. SetNX must be atomic per key.
type IdempotencyStore interface {
	// SetNX stores the value under key if the key is absent and returns true.
	// Returns false (and the stored value) when the key already exists.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error)
	// Get returns the stored value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes the key so a later request may reserve it again.
	Delete(ctx context.Context, key string) error
}
