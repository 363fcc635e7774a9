// Package vcbuilder runs the AND/OR virtual-connection fixed point that
// populates a vcstore.Store for one colour: base VCs from adjacency,
// pattern-sourced VCs from a catalogue, then OR-combining SEMIs and
// AND-combining FULLs until the work queue drains.
//
// Grounded on original_source/src/hex/{VCBuilder,VCOr,Connections}.{hpp,cpp}.
package vcbuilder

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/engineconfig"
	"github.com/sarchlab/benzene/group"
	"github.com/sarchlab/benzene/obslog"
	"github.com/sarchlab/benzene/pattern"
	"github.com/sarchlab/benzene/vcstore"
)

// Stats accumulates build-time counters, mirroring ConnectionBuilder's
// statistics struct in original_source (itself folded into a single struct
// returned alongside the store rather than logged as a build side effect).
type Stats struct {
	BaseVCs     int
	PatternVCs  int
	QueuePops   int
	ORCombines  int
	ANDCombines int
	Aborted     bool // true if abort_on_winning_connection stopped the loop early
}

// Catalogues bundles the two catalogue-driven inputs a build may consume.
// Either field left nil disables the corresponding step.
type Catalogues struct {
	VC       *pattern.VCPatternSet
	Captured *pattern.Catalogue
}

// builder holds one from-scratch or incremental build's working state. It is
// not exported: callers only ever see BuildFromScratch/BuildIncremental and
// the Stats they return.
type builder struct {
	pos    *boardgeo.Position
	gs     *group.Groups
	friend boardgeo.Color
	cfg    engineconfig.Parameters
	cats   Catalogues
	store  *vcstore.Store

	captured map[boardgeo.Cell]bitset.Set
	queue    []vcstore.Pair
	queued   map[vcstore.Pair]bool

	stats Stats
}

// BuildFromScratch builds a complete VC store for friend from pos and gs,
// running base VCs, pattern VCs, and the AND/OR fixed point to completion.
// The returned store has journaling disabled; a caller that wants to revert
// later should call store.SetTracking(true) itself.
func BuildFromScratch(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, cfg engineconfig.Parameters, cats Catalogues) (*vcstore.Store, Stats) {
	store := vcstore.New()
	store.SetTracking(false)
	store.SetSoftLimit(cfg.SoftLimit)
	b := newBuilder(pos, gs, friend, cfg, cats, store)
	b.recomputeCaptured()
	b.addBaseVCs()
	if cfg.UsePatterns {
		b.addPatternVCs()
	}
	b.runFixedPoint()
	b.runThreats()
	return store, b.stats
}

func newBuilder(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, cfg engineconfig.Parameters, cats Catalogues, store *vcstore.Store) *builder {
	return &builder{
		pos: pos, gs: gs, friend: friend, cfg: cfg, cats: cats, store: store,
		queued: make(map[vcstore.Pair]bool),
	}
}

func (b *builder) recomputeCaptured() {
	if b.cats.Captured == nil {
		b.captured = nil
		return
	}
	b.captured = pattern.CapturedSets(b.cats.Captured, b.pos.Geo, b.pos, b.friend)
}

func (b *builder) capturedOf(c boardgeo.Cell) bitset.Set {
	if b.captured == nil {
		return bitset.Set{}
	}
	return b.captured[c]
}

// enqueue marks (x, y) to be visited by the fixed point, unless it is
// already waiting.
func (b *builder) enqueue(x, y boardgeo.Cell) {
	p := vcstore.MakePair(int(x), int(y))
	if b.queued[p] {
		return
	}
	b.queued[p] = true
	b.queue = append(b.queue, p)
}

// addBaseVCs adds, for every friendly group and every empty cell adjacent to
// it, an empty-carrier FULL connection between the group's captain and that
// cell -- the base case every other VC is eventually built on top of.
func (b *builder) addBaseVCs() {
	for _, g := range b.gs.Of(b.friend) {
		empties := g.NbsColorSet(b.gs, boardgeo.Only(boardgeo.Empty))
		empties.ForEach(func(bit int) bool {
			e := boardgeo.Cell(bit)
			b.store.PutFull(int(g.Captain()), int(e), carrier.Entry{Carrier: bitset.Set{}})
			b.enqueue(g.Captain(), e)
			b.stats.BaseVCs++
			return true
		})
	}
}

// addPatternVCs attempts to add every matching catalogue VC pattern's
// carrier as a FULL connection between the pattern's own two endpoints.
func (b *builder) addPatternVCs() {
	if b.cats.VC == nil {
		return
	}
	for _, p := range b.cats.VC.Patterns {
		if !b.cfg.UseNonEdgePatterns && !p.End1.IsEdge() && !p.End2.IsEdge() {
			continue
		}
		if !p.Matches(b.pos, b.friend) {
			continue
		}
		entry := carrier.Entry{Carrier: p.Carrier(b.pos, b.friend)}
		if b.store.TryPutFull(int(p.End1), int(p.End2), entry) {
			b.enqueue(p.End1, p.End2)
			b.stats.PatternVCs++
		}
	}
}

// runFixedPoint drains the work queue, running the OR step on SEMIs and the
// AND step on FULLs for each popped pair until nothing new is produced.
func (b *builder) runFixedPoint() {
	edge1, edge2 := friendEdges(b.friend)
	for len(b.queue) > 0 {
		p := b.queue[0]
		b.queue = b.queue[1:]
		delete(b.queued, p)
		b.stats.QueuePops++
		obslog.FixedPoint("vcbuilder: pop", "x", p.X, "y", p.Y)

		b.orStep(p)
		b.andStep(p)

		if b.cfg.AbortOnWinningConnection && b.winningConnectionExists(edge1, edge2) {
			b.stats.Aborted = true
			return
		}
	}
}

// winningConnectionExists reports whether edge1 and edge2 are already
// connected, either because their groups merged outright or because a FULL
// is stored between their captains, matching decomp.go's isDecided.
func (b *builder) winningConnectionExists(edge1, edge2 boardgeo.Cell) bool {
	if b.gs.AreConnected(edge1, edge2) {
		return true
	}
	full := b.store.GetFull(int(b.gs.Captain(edge1)), int(b.gs.Captain(edge2)))
	return full != nil && full.Len() > 0
}

func friendEdges(colour boardgeo.Color) (boardgeo.Cell, boardgeo.Cell) {
	if colour == boardgeo.Black {
		return boardgeo.North, boardgeo.South
	}
	return boardgeo.East, boardgeo.West
}
