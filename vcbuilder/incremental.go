package vcbuilder

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/engineconfig"
	"github.com/sarchlab/benzene/group"
	"github.com/sarchlab/benzene/vcstore"
)

// BuildIncremental updates store in place for a move that turned oldGroups
// into newGroups, where added[colour] is the set of cells colour just
// played. When cfg.IncrementalBuilds is false it falls back to a
// from-scratch rebuild of store instead.
//
// Mutations run directly against store's carrier lists rather than through
// its change log: the merge-shrink-upgrade rewrite reshapes entries instead
// of simply adding or removing them, which the log's Add/Remove vocabulary
// cannot replay. A caller that needs to undo an incremental update keeps a
// pre-move Position/Groups snapshot and reruns BuildFromScratch from it,
// rather than calling Store.Revert.
func BuildIncremental(store *vcstore.Store, pos *boardgeo.Position, oldGroups, newGroups *group.Groups, friend boardgeo.Color, added [3]bitset.Set, cfg engineconfig.Parameters, cats Catalogues) Stats {
	b := newBuilder(pos, newGroups, friend, cfg, cats, store)

	if !cfg.IncrementalBuilds {
		store.Clear()
		b.recomputeCaptured()
		b.addBaseVCs()
		if cfg.UsePatterns {
			b.addPatternVCs()
		}
		b.runFixedPoint()
		b.runThreats()
		return b.stats
	}

	b.kill(added[friend.Opponent()])
	touched := b.merge(oldGroups, newGroups, added[friend])
	b.recomputeCaptured()
	for p := range touched {
		b.enqueue(boardgeo.Cell(p.X), boardgeo.Cell(p.Y))
	}
	b.runFixedPoint()
	b.runThreats()
	return b.stats
}

// kill deletes every carrier (FULL or SEMI, any pair) that now intersects
// mask -- the opponent's just-played cells, which can no longer be part of
// any connection built under the old groups -- and drops outright any pair
// with an endpoint in mask, since an endpoint that was empty or the
// opponent's own group captain no longer denotes the same cell meaning it
// did when the pair's entries were computed.
func (b *builder) kill(mask bitset.Set) {
	if mask.None() {
		return
	}
	for _, p := range b.store.Pairs() {
		if mask.Test(p.X) || mask.Test(p.Y) {
			b.store.Delete(p.X, p.Y)
			continue
		}
		if full := b.store.GetFull(p.X, p.Y); full != nil {
			full.RemoveAllContaining(mask)
		}
		if semi := b.store.GetSemi(p.X, p.Y); semi != nil {
			semi.RemoveAllContaining(mask)
		}
	}
}

// merge finds, for every new friendly group, the old friendly group
// captains it absorbed, and migrates their lists against every other old
// captain onto the new captain, shrinking each carrier by friendAdded. It
// returns every (x, newCaptain) pair whose list changed.
func (b *builder) merge(oldGroups, newGroups *group.Groups, friendAdded bitset.Set) map[vcstore.Pair]bool {
	touched := make(map[vcstore.Pair]bool)
	for _, newG := range newGroups.Of(b.friend) {
		absorbed := absorbedCaptains(oldGroups, newG, friendAdded)
		if len(absorbed) == 0 {
			continue
		}
		absorbedSet := make(map[boardgeo.Cell]bool, len(absorbed))
		for _, a := range absorbed {
			absorbedSet[a] = true
		}
		for _, oldG := range oldGroups.All() {
			x := oldG.Captain()
			if absorbedSet[x] || x == newG.Captain() {
				continue
			}
			for _, a := range absorbed {
				b.migrate(x, a, newG.Captain(), friendAdded, touched)
			}
		}
	}
	return touched
}

// absorbedCaptains returns the distinct old friendly group captains among
// newG's members, excluding cells newly played this turn (they belonged to
// no old friendly group) and newG's own captain.
func absorbedCaptains(oldGroups *group.Groups, newG *group.Group, friendAdded bitset.Set) []boardgeo.Cell {
	var out []boardgeo.Cell
	seen := map[boardgeo.Cell]bool{}
	newG.Members().ForEach(func(bit int) bool {
		if friendAdded.Test(bit) {
			return true
		}
		oldCaptain := oldGroups.Captain(boardgeo.Cell(bit))
		if oldCaptain != newG.Captain() && !seen[oldCaptain] {
			seen[oldCaptain] = true
			out = append(out, oldCaptain)
		}
		return true
	})
	return out
}

// migrate moves (x, a)'s FULL and SEMI entries onto (x, newCaptain),
// shrinking each carrier by friendAdded: a SEMI whose key was just played by
// friend is realised as a FULL; everything else keeps its kind.
func (b *builder) migrate(x, a, newCaptain boardgeo.Cell, friendAdded bitset.Set, touched map[vcstore.Pair]bool) {
	if full := b.store.GetFull(int(x), int(a)); full != nil {
		for _, e := range full.Entries() {
			shrunk := bitset.Sub(e.Carrier, friendAdded)
			if b.store.TryPutFull(int(x), int(newCaptain), carrier.Entry{Carrier: shrunk}) {
				touched[vcstore.MakePair(int(x), int(newCaptain))] = true
			}
		}
	}
	if semi := b.store.GetSemi(int(x), int(a)); semi != nil {
		for _, e := range semi.Entries() {
			shrunk := bitset.Sub(e.Carrier, friendAdded)
			if friendAdded.Test(e.Key) {
				if b.store.TryPutFull(int(x), int(newCaptain), carrier.Entry{Carrier: shrunk}) {
					touched[vcstore.MakePair(int(x), int(newCaptain))] = true
				}
				continue
			}
			if b.store.TryPutSemi(int(x), int(newCaptain), carrier.Entry{Carrier: shrunk, Key: e.Key, HasKey: true}) {
				touched[vcstore.MakePair(int(x), int(newCaptain))] = true
			}
		}
	}
	b.store.Delete(int(x), int(a))
}
