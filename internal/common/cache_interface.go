package common

import "time"

// CacheInterface is the contract both cache backends satisfy: the in-memory
// go-cache service and the Redis one. Services take this, never a concrete
// backend.
type CacheInterface interface {
	// Set stores a value under key for duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value and true when present, nil and false otherwise.
	Get(key string) (interface{}, bool)

	// Delete removes the key.
	Delete(key string)

	// Close releases any underlying connections.
	Close() error
}
