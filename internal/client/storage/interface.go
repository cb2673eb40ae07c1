// Package storage implements the local key/value store backing WorldQuery's
// persisted state: the current user, the registered-users list, and the
// per-user favorites sets. Values are string-serialized JSON blobs; parsing
// them is the caller's responsibility, and a malformed value must never be
// treated as fatal by callers.
package storage

import "context"

// Store is a synchronous key/value store over string-serialized values.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
