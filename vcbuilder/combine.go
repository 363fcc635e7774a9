package vcbuilder

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/vcstore"
)

// orStep runs the OR rule on (x, y)'s SEMI list: any 2..max_ors-sized subset
// of entries with distinct keys and pairwise-disjoint carriers can be
// unioned (carriers and keys together) into a new FULL, since the opponent
// can only occupy one key cell and the rest of the subset still connects.
// Every entry considered is marked old afterwards, matching VCOr's "these
// semis drove a combination attempt" bookkeeping.
func (b *builder) orStep(p vcstore.Pair) {
	semi := b.store.GetSemi(p.X, p.Y)
	if semi == nil || semi.Len() == 0 {
		return
	}
	entries := semi.Entries()
	maxOrs := b.cfg.MaxOrs
	if maxOrs < 2 {
		maxOrs = 2
	}

	var combo []carrier.Entry
	b.enumerateOrs(entries, 0, combo, maxOrs, func(chosen []carrier.Entry) {
		var carrierUnion bitset.Set
		for _, e := range chosen {
			carrierUnion = bitset.Or(carrierUnion, e.Carrier)
			carrierUnion.Set(e.Key)
		}
		full := carrier.Entry{Carrier: carrierUnion}
		if b.store.TryPutFull(p.X, p.Y, full) {
			b.enqueue(boardgeo.Cell(p.X), boardgeo.Cell(p.Y))
			b.stats.ORCombines++
		}
	})

	semi.MarkOld()
}

// enumerateOrs visits every subset of entries[start:] of size 2..maxOrs
// whose carriers are pairwise disjoint (including not sharing a key),
// invoking visit with each qualifying subset.
func (b *builder) enumerateOrs(entries []carrier.Entry, start int, chosen []carrier.Entry, maxOrs int, visit func([]carrier.Entry)) {
	if len(chosen) >= 2 {
		visit(append([]carrier.Entry{}, chosen...))
	}
	if len(chosen) >= maxOrs {
		return
	}
	for i := start; i < len(entries); i++ {
		cand := entries[i]
		if !disjointFromAll(cand, chosen) {
			continue
		}
		b.enumerateOrs(entries, i+1, append(chosen, cand), maxOrs, visit)
	}
}

func disjointFromAll(cand carrier.Entry, chosen []carrier.Entry) bool {
	for _, c := range chosen {
		if cand.Carrier.Intersects(c.Carrier) {
			return false
		}
		if cand.Key == c.Key {
			return false
		}
	}
	return true
}

// andStep runs the AND rule on (x, y)'s FULL list: for every other cell z
// with stored FULLs on both (x, z) and (z, y), an empty intersection
// combines into a FULL (if z is friendly) or a SEMI keyed on z (if z is
// empty), optionally widened by z's captured set when the intersection is
// covered by the union of all three captured sets.
func (b *builder) andStep(p vcstore.Pair) {
	full := b.store.GetFull(p.X, p.Y)
	if full == nil || full.Len() == 0 {
		return
	}
	xCaptured := b.capturedOf(boardgeo.Cell(p.X))
	yCaptured := b.capturedOf(boardgeo.Cell(p.Y))

	for _, z := range b.store.Pairs() {
		zCell, ok := thirdCell(z, p)
		if !ok {
			continue
		}
		xz := b.store.GetFull(p.X, zCell)
		zy := b.store.GetFull(zCell, p.Y)
		if xz == nil || zy == nil || xz.Len() == 0 || zy.Len() == 0 {
			continue
		}
		b.combineThroughZ(p, boardgeo.Cell(zCell), xz, zy, xCaptured, yCaptured)
	}

	full.MarkOld()
}

// thirdCell reports whether pair z shares exactly one endpoint with p, and
// if so which cell is the other one (the candidate "z" to AND through).
func thirdCell(z, p vcstore.Pair) (int, bool) {
	switch {
	case z.X == p.X && z.Y != p.Y:
		return z.Y, true
	case z.Y == p.X && z.X != p.Y:
		return z.X, true
	case z.X == p.Y && z.Y != p.X:
		return z.Y, true
	case z.Y == p.Y && z.X != p.X:
		return z.X, true
	default:
		return 0, false
	}
}

func (b *builder) combineThroughZ(p vcstore.Pair, z boardgeo.Cell, xz, zy *carrier.List, xCaptured, yCaptured bitset.Set) {
	zFriendly := b.pos.ColorAt(z) == b.friend
	if !zFriendly && b.pos.ColorAt(z) != boardgeo.Empty {
		return
	}
	if zFriendly && !b.cfg.AndOverEdge && z.IsEdge() {
		return
	}
	zCaptured := b.capturedOf(z)
	allCaptured := bitset.Or(bitset.Or(xCaptured, yCaptured), zCaptured)

	for _, ex := range xz.Entries() {
		for _, ey := range zy.Entries() {
			inter := bitset.And(ex.Carrier, ey.Carrier)
			widened := false
			if !inter.None() {
				if !inter.IsSubsetOf(allCaptured) {
					continue
				}
				widened = true
			}
			union := bitset.Or(ex.Carrier, ey.Carrier)
			if widened {
				union = bitset.Or(union, zCaptured)
			}

			var added bool
			if zFriendly {
				added = b.store.TryPutFull(p.X, p.Y, carrier.Entry{Carrier: union})
			} else {
				semiCarrier := union
				semiCarrier.Set(int(z))
				added = b.store.TryPutSemi(p.X, p.Y, carrier.Entry{Carrier: semiCarrier, Key: int(z), HasKey: true})
			}
			if added {
				b.enqueue(boardgeo.Cell(p.X), boardgeo.Cell(p.Y))
				b.stats.ANDCombines++
			}
		}
	}
}
