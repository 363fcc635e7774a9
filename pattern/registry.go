package pattern

import (
	"os"
	"sync"

	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/obslog"
)

// registryKey identifies one cached catalogue: a pattern set keyed by
// (width, height, colour).
type registryKey struct {
	width, height int
	color         boardgeo.Color
}

// Registry lazily loads and caches VC pattern catalogues per
// (width, height, colour) as an explicit value instead of process-global
// mutable state. The zero value is ready to use.
type Registry struct {
	mu    sync.Mutex
	cache map[registryKey]*VCPatternSet
	Stats obslog.CacheStats
}

// NewRegistry returns an empty Registry and registers an atexit flush hook
// logging its final load/hit counts under name.
func NewRegistry(name string) *Registry {
	r := &Registry{cache: make(map[registryKey]*VCPatternSet)}
	obslog.RegisterFlush(name, &r.Stats)
	return r
}

// Load returns the VC pattern catalogue for (geo.Width, geo.Height, colour),
// parsing path on first request and serving the cached value thereafter.
func (r *Registry) Load(geo *boardgeo.Geometry, colour boardgeo.Color, path string) (*VCPatternSet, error) {
	key := registryKey{width: geo.Width, height: geo.Height, color: colour}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache == nil {
		r.cache = make(map[registryKey]*VCPatternSet)
	}
	if set, ok := r.cache[key]; ok {
		r.Stats.RecordHit()
		return set, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := LoadVCPatterns(f, geo)
	if err != nil {
		return nil, err
	}
	r.cache[key] = set
	r.Stats.RecordLoad()
	return set, nil
}
