// Package cache stores rendered artifacts between runs.
//
// # Overview
//
// Layouts are cheap and always recomputed; only the encoded outputs (SVG,
// PNG, PDF, JSON bytes) are cached, keyed by a hash of the layout plus every
// paint and size option that affects the bytes.
//
// Backends:
//   - [FileCache]: one file per entry under the XDG cache dir, for the CLI
//   - [MemoryCache]: bounded LRU with expiry, the default for the HTTP server
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: document store with a TTL index
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] derives keys; [ScopedKeyer] prefixes them so several
// deployments can share one backend.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(layoutJSON), cache.ArtifactKeyOpts{Format: "svg"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default expirations.
const (
	// TTLArtifact is how long rendered outputs stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists everything besides the layout that changes the
// bytes of an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background,omitempty"`
	Glyph      string `json:"glyph,omitempty"`
	Grid       bool   `json:"grid,omitempty"`
	Engine     string `json:"engine,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
