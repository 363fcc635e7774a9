package obslog

import (
	"log/slog"

	"github.com/tebeka/atexit"
)

// CacheStats counts load/hit events for a registry of lazily-loaded
// catalogues (pattern.Registry's per-(width,height,colour) pattern
// catalogues, recast as a LazyOnce cache held by an explicit Registry value).
type CacheStats struct {
	Loads int
	Hits  int
}

// RecordLoad increments the load counter: a catalogue was parsed from disk.
func (c *CacheStats) RecordLoad() { c.Loads++ }

// RecordHit increments the hit counter: a cached catalogue was reused.
func (c *CacheStats) RecordHit() { c.Hits++ }

// RegisterFlush registers an atexit hook that logs name's final load/hit
// counts when the process exits.
func RegisterFlush(name string, stats *CacheStats) {
	atexit.Register(func() {
		slog.Info("cache stats at exit", "cache", name, "loads", stats.Loads, "hits", stats.Hits)
	})
}
