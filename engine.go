// Package benzene is the engine's public facade: build a VC store for a
// position, query it, and mutate it incrementally as moves are played.
//
// Grounded on config/config.go's DeviceBuilder.Build facade shape: one
// value-receiver Builder assembling sub-components (here: position,
// groups, store) behind a small set of named operations rather than
// exposing the sub-packages directly.
package benzene

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/engineconfig"
	"github.com/sarchlab/benzene/group"
	"github.com/sarchlab/benzene/pattern"
	"github.com/sarchlab/benzene/vcbuilder"
	"github.com/sarchlab/benzene/vcstore"
)

// Engine owns one colour's VC store for one position and keeps the Groups
// decomposition it was built against, so later incremental builds can diff
// against it.
type Engine struct {
	Friend boardgeo.Color
	Store  *vcstore.Store

	pos    *boardgeo.Position
	groups *group.Groups
	cats   vcbuilder.Catalogues
}

// NewEngine builds a from-scratch Engine for friend over pos, using cats as
// the pattern/captured-set catalogues (either field may be nil to disable
// that input).
func NewEngine(pos *boardgeo.Position, friend boardgeo.Color, cfg engineconfig.Parameters, cats vcbuilder.Catalogues) *Engine {
	gs := group.Build(pos)
	store, _ := vcbuilder.BuildFromScratch(pos, gs, friend, cfg, cats)
	return &Engine{Friend: friend, Store: store, pos: pos, groups: gs, cats: cats}
}

// Rebuild rebuilds the engine's VC store from scratch against its current
// position, discarding whatever store it held before.
func (e *Engine) Rebuild(cfg engineconfig.Parameters) vcbuilder.Stats {
	e.groups = group.Build(e.pos)
	store, stats := vcbuilder.BuildFromScratch(e.pos, e.groups, e.Friend, cfg, e.cats)
	e.Store = store
	return stats
}

// Update plays colour at c on the engine's position, then rebuilds the VC
// store -- incrementally when cfg.IncrementalBuilds is set, from scratch
// otherwise. Returns BadInput if the move is illegal.
func (e *Engine) Update(colour boardgeo.Color, c boardgeo.Cell, cfg engineconfig.Parameters) (vcbuilder.Stats, error) {
	if err := e.pos.Play(colour, c); err != nil {
		return vcbuilder.Stats{}, err
	}
	oldGroups := e.groups
	newGroups := group.Build(e.pos)

	var added [3]bitset.Set
	added[colour].Set(int(c))

	stats := vcbuilder.BuildIncremental(e.Store, e.pos, oldGroups, newGroups, e.Friend, added, cfg, e.cats)
	e.groups = newGroups
	return stats, nil
}

// Revert undoes the stone at c and rebuilds the VC store from scratch: an
// incremental merge-shrink-upgrade has no general inverse (see DESIGN.md),
// so unwinding a move always falls back to BuildFromScratch against the
// position with c removed.
func (e *Engine) Revert(c boardgeo.Cell, cfg engineconfig.Parameters) error {
	if err := e.pos.Undo(c); err != nil {
		return err
	}
	e.Rebuild(cfg)
	return nil
}

// FullExists reports whether a FULL connection exists between x and y.
func (e *Engine) FullExists(x, y boardgeo.Cell) bool {
	full := e.Store.GetFull(int(x), int(y))
	return full != nil && full.Len() > 0
}

// SmallestFullCarrier returns the smallest-carrier FULL entry between x and
// y, or ok=false if none exists.
func (e *Engine) SmallestFullCarrier(x, y boardgeo.Cell) (carrierSet bitset.Set, ok bool) {
	return smallest(e.Store.GetFull(int(x), int(y)))
}

// SemiExists reports whether a SEMI connection exists between x and y.
func (e *Engine) SemiExists(x, y boardgeo.Cell) bool {
	semi := e.Store.GetSemi(int(x), int(y))
	return semi != nil && semi.Len() > 0
}

// SmallestSemiCarrierAndKey returns the smallest-carrier SEMI entry between
// x and y, and the empty cell keying it, or ok=false if none exists.
func (e *Engine) SmallestSemiCarrierAndKey(x, y boardgeo.Cell) (carrierSet bitset.Set, key boardgeo.Cell, ok bool) {
	c, found := smallest(e.Store.GetSemi(int(x), int(y)))
	if !found {
		return bitset.Set{}, 0, false
	}
	semi := e.Store.GetSemi(int(x), int(y))
	for _, en := range semi.Entries() {
		if en.Carrier == c {
			return c, boardgeo.Cell(en.Key), true
		}
	}
	return bitset.Set{}, 0, false
}

func smallest(list *carrier.List) (bitset.Set, bool) {
	if list == nil || list.Len() == 0 {
		return bitset.Set{}, false
	}
	best := list.Entries()[0].Carrier
	for _, e := range list.Entries()[1:] {
		if e.Carrier.Count() < best.Count() {
			best = e.Carrier
		}
	}
	return best, true
}

// FullNeighbours returns every cell FULLy connected to x.
func (e *Engine) FullNeighbours(x boardgeo.Cell) bitset.Set {
	return e.neighbours(x, true)
}

// SemiNeighbours returns every cell SEMI-connected to x.
func (e *Engine) SemiNeighbours(x boardgeo.Cell) bitset.Set {
	return e.neighbours(x, false)
}

func (e *Engine) neighbours(x boardgeo.Cell, full bool) bitset.Set {
	var out bitset.Set
	for _, p := range e.Store.Pairs() {
		var list *carrier.List
		if full {
			list = e.Store.GetFull(p.X, p.Y)
		} else {
			list = e.Store.GetSemi(p.X, p.Y)
		}
		if list == nil || list.Len() == 0 {
			continue
		}
		switch int(x) {
		case p.X:
			out.Set(p.Y)
		case p.Y:
			out.Set(p.X)
		}
	}
	return out
}

// FullIntersection returns the running bit-wise AND of every FULL carrier
// between x and y.
func (e *Engine) FullIntersection(x, y boardgeo.Cell) bitset.Set {
	if full := e.Store.GetFull(int(x), int(y)); full != nil {
		return full.Intersection()
	}
	return bitset.Set{}
}

// SemiIntersection returns the running bit-wise AND of every SEMI carrier
// between x and y.
func (e *Engine) SemiIntersection(x, y boardgeo.Cell) bitset.Set {
	if semi := e.Store.GetSemi(int(x), int(y)); semi != nil {
		return semi.Intersection()
	}
	return bitset.Set{}
}

// LoadCatalogues assembles an Engine's Catalogues from catalogues already
// loaded via pattern.Load/LoadVCPatterns.
func LoadCatalogues(vcSet *pattern.VCPatternSet, captured *pattern.Catalogue) vcbuilder.Catalogues {
	return vcbuilder.Catalogues{VC: vcSet, Captured: captured}
}

