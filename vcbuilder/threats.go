package vcbuilder

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/vcstore"
)

// runThreats is the key-indexed threats extension (engineconfig.Parameters
// Threats): a second-order OR that looks, for every SEMI(x, y) keyed on k,
// for another SEMI(x, k) keyed on some z disjoint from the first SEMI's
// carrier and key, and folds the two into a new SEMI(x, y) keyed on z. This
// surfaces threats whose carrier reaches outside (x, y)'s own carrier list,
// through the key cell of an existing SEMI.
//
// Unlike the rest of the fixed point, this pass always recomputes its output
// fresh from the store's current SEMI lists rather than via the work queue,
// matching the Open Question resolution in DESIGN.md: threats output is not
// required to be idempotent across incremental builds, only across repeated
// calls against the same store snapshot.
func (b *builder) runThreats() {
	if !b.cfg.Threats {
		return
	}
	for _, p := range b.store.Pairs() {
		semi := b.store.GetSemi(p.X, p.Y)
		if semi == nil || semi.Len() == 0 {
			continue
		}
		for _, e := range semi.Entries() {
			b.threatsThrough(p, e)
		}
	}
}

func (b *builder) threatsThrough(p vcstore.Pair, e carrier.Entry) {
	xk := b.store.GetSemi(p.X, e.Key)
	if xk == nil {
		return
	}
	for _, e2 := range xk.Entries() {
		if e2.Key == e.Key || e2.Key == p.Y {
			continue
		}
		if e.Carrier.Test(e2.Key) || e2.Carrier.Test(e.Key) {
			continue
		}
		if e.Carrier.Intersects(e2.Carrier) {
			continue
		}
		union := bitset.Or(e.Carrier, e2.Carrier)
		union.Set(e.Key)
		if b.store.TryPutSemi(p.X, p.Y, carrier.Entry{Carrier: union, Key: e2.Key, HasKey: true}) {
			b.enqueue(boardgeo.Cell(p.X), boardgeo.Cell(p.Y))
		}
	}
}
