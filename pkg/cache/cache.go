// Package cache stores rendered chart artifacts between runs.
//
// Two layers of output are cached, each under its own key family:
//
//   - script: the jqPlot call, its hook code and the plugin list built from
//     one chart definition
//   - artifact: a derived output (HTML page, dependency graph) built from a
//     cached script
//
// Keys are derived from a hash of the definition plus the options that
// change the output, so editing a definition never serves stale bytes.
// Backends are interchangeable behind [Cache]: [FileCache] for the CLI,
// [RedisCache] for the HTTP server and [NullCache] when caching is off.
package cache

import (
	"context"
	"time"
)

// Default lifetimes per key family.
const (
	TTLScript   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ScriptKeyOpts holds the options that change a rendered script.
type ScriptKeyOpts struct {
	DisableRedraw bool   `json:"disable_redraw,omitempty"`
	PlotVar       string `json:"plot_var,omitempty"`
}

// ArtifactKeyOpts holds the options that change a derived artifact.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	AssetBase string `json:"asset_base,omitempty"`
	PlotVar   string `json:"plot_var,omitempty"`
	Detailed  bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ScriptKey(defHash string, opts ScriptKeyOpts) string
	ArtifactKey(scriptHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form family:sha256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) ScriptKey(defHash string, opts ScriptKeyOpts) string {
	return hashKey("script", defHash, opts)
}

func (DefaultKeyer) ArtifactKey(scriptHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", scriptHash, opts)
}
