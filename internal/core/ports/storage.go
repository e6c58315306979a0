package ports

import "context"

// KeyValueStore is the minimal persistence contract the storefront needs:
// string keys to string values, scoped to one logical client. Concurrent
// writers from other instances are unguarded; last write wins.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Ping verifies the backend is reachable (readiness probes).
	Ping(ctx context.Context) error
}
