package domain

import (
	"context"
	"time"
)

// CacheRepository defines the cache operations shared by services and jobs.
type CacheRepository interface {
	// Set stores a value with expiration
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Get retrieves a value by key
	Get(ctx context.Context, key string) (string, error)

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// Exists checks if a key exists
	Exists(ctx context.Context, key string) (bool, error)

	// AcquireLock takes a distributed lock, returning false when held elsewhere
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// ReleaseLock releases a previously acquired lock
	ReleaseLock(ctx context.Context, key string) error

	// Close closes the cache connection
	Close() error
}

// EventDispatcher fans out CRM events to subscribed webhook endpoints.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event string, data map[string]interface{}) error
}
