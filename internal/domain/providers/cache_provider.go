package providers

import "context"

// Well-known cache keys. Both are last-write-wins snapshots read once per
// page load by the client.
const (
	KeyAssessmentData         = "assessmentData"
	KeyHospitalSearchResponse = "hospitalSearchResponse"
)

// CacheProvider defines the interface for the key/value cache backing
// persisted client state and read-through caching.
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration; zero means no expiry
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)
}
