package session

import "context"

// Store is durable client-side storage for the persisted session, the
// process-side analog of browser local storage. Writes are last-write-wins;
// no locking is coordinated across processes.
type Store interface {
	// Get retrieves a value by key.
	// Returns agentone.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close closes the store and releases any resources.
	Close() error
}
