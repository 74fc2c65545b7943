package secrets

import "context"

// Store is a persistent key/value store for credentials.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes all pairs atomically where the backend supports it.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear deletes every stored pair.
	Clear(ctx context.Context) error
}
