// Package vcstore implements per-endpoint-pair VC storage: a dense map
// keyed by an unordered pair of cells, each slot owning at
// most one FULL carrier list and one SEMI carrier list, with change-log
// backed rollback.
//
// Grounded on original_source/src/hex/VCS.{hpp,cpp} and VCSet.cpp.
package vcstore

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/changelog"
)

// Pair is an unordered pair of cell ids, canonicalised so X <= Y.
type Pair struct {
	X, Y int
}

// MakePair canonicalises a and b into a Pair with X <= Y.
func MakePair(a, b int) Pair {
	if a <= b {
		return Pair{X: a, Y: b}
	}
	return Pair{X: b, Y: a}
}

// listKind distinguishes the two lists a slot may own, for change-log
// bookkeeping.
type listKind int

const (
	fullKind listKind = iota
	semiKind
)

type change struct {
	pair  Pair
	kind  listKind
	entry carrier.Entry
}

// slot is a pair's storage: up to one FULL list and one SEMI list.
type slot struct {
	full carrier.List
	semi carrier.List
}

// Store is the dense VC map. Every mutation through Put/TryPut is journaled
// so a caller can roll back to a PushMarker scope with Revert; Tracking
// turns journaling off entirely for a from-scratch build that never needs
// to undo.
type Store struct {
	slots     map[Pair]*slot
	log       changelog.Log[change]
	tracking  bool
	softLimit int
}

// New returns an empty Store with journaling enabled.
func New() *Store {
	return &Store{slots: make(map[Pair]*slot), tracking: true}
}

// SetTracking enables or disables change-log journaling. A from-scratch
// build that will never revert can disable it to skip the bookkeeping.
func (s *Store) SetTracking(on bool) {
	s.tracking = on
}

// SetSoftLimit sets the per-list soft cap (carrier.List.SoftLimit) applied
// to every list created from this point on. 0 means unbounded.
func (s *Store) SetSoftLimit(n int) {
	s.softLimit = n
}

// Clear empties every slot and the change log, leaving tracking and
// soft-limit settings untouched. Used by a caller that decides to rebuild
// a store from scratch in place rather than allocate a new one.
func (s *Store) Clear() {
	s.slots = make(map[Pair]*slot)
	s.log.Clear()
}

// PushMarker pushes a scope boundary that Revert rolls back to.
func (s *Store) PushMarker() {
	s.log.PushMarker()
}

func (s *Store) slotFor(p Pair, create bool) *slot {
	sl, ok := s.slots[p]
	if !ok {
		if !create {
			return nil
		}
		sl = &slot{}
		sl.full.SoftLimit = s.softLimit
		sl.semi.SoftLimit = s.softLimit
		s.slots[p] = sl
	}
	return sl
}

// GetFull returns the FULL list for (x, y), or nil if the pair has never
// been touched.
func (s *Store) GetFull(x, y int) *carrier.List {
	sl := s.slotFor(MakePair(x, y), false)
	if sl == nil {
		return nil
	}
	return &sl.full
}

// GetSemi returns the SEMI list for (x, y), or nil if the pair has never
// been touched.
func (s *Store) GetSemi(x, y int) *carrier.List {
	sl := s.slotFor(MakePair(x, y), false)
	if sl == nil {
		return nil
	}
	return &sl.semi
}

// PutFull unconditionally appends e to the FULL list for (x, y), journaling
// the addition as an Add record so Revert can undo it.
func (s *Store) PutFull(x, y int, e carrier.Entry) {
	s.put(x, y, fullKind, e)
}

// PutSemi unconditionally appends e to the SEMI list for (x, y). e.HasKey
// must be true.
func (s *Store) PutSemi(x, y int, e carrier.Entry) {
	if !e.HasKey {
		panic("vcstore: PutSemi requires e.HasKey")
	}
	s.put(x, y, semiKind, e)
}

func (s *Store) put(x, y int, kind listKind, e carrier.Entry) {
	p := MakePair(x, y)
	sl := s.slotFor(p, true)
	list := s.listOf(sl, kind)
	list.AddNew(e)
	if s.tracking {
		s.log.Push(changelog.Add, change{pair: p, kind: kind, entry: e})
	}
	if kind == fullKind {
		s.enforceCrossInvariant(p, sl, e.Carrier)
	}
}

// TryPutFull attempts to add e to the FULL list for (x, y) via TryAdd,
// enforcing the superset invariant. It reports whether e was added.
func (s *Store) TryPutFull(x, y int, e carrier.Entry) bool {
	return s.tryPut(x, y, fullKind, e)
}

// TryPutSemi attempts to add e to the SEMI list for (x, y) via TryAdd.
func (s *Store) TryPutSemi(x, y int, e carrier.Entry) bool {
	if !e.HasKey {
		panic("vcstore: TryPutSemi requires e.HasKey")
	}
	return s.tryPut(x, y, semiKind, e)
}

func (s *Store) tryPut(x, y int, kind listKind, e carrier.Entry) bool {
	p := MakePair(x, y)
	sl := s.slotFor(p, true)
	if kind == semiKind && sl.full.SupersetOfAny(e.Carrier) {
		// cross-list invariant: no SEMI carrier may be a superset of any
		// FULL carrier with the same endpoints.
		return false
	}
	list := s.listOf(sl, kind)
	added, removedSupersets := list.TryAddCapture(e)
	if !added {
		return false
	}
	if s.tracking {
		for _, r := range removedSupersets {
			s.log.Push(changelog.Remove, change{pair: p, kind: kind, entry: r})
		}
		s.log.Push(changelog.Add, change{pair: p, kind: kind, entry: e})
	}
	if kind == fullKind {
		s.enforceCrossInvariant(p, sl, e.Carrier)
	}
	return true
}

func (s *Store) listOf(sl *slot, kind listKind) *carrier.List {
	if kind == fullKind {
		return &sl.full
	}
	return &sl.semi
}

// enforceCrossInvariant removes any SEMI entry for p that has become a
// superset of the FULL carrier just added. The removal is journaled like
// any other Remove so Revert can replay it.
func (s *Store) enforceCrossInvariant(p Pair, sl *slot, fullCarrier bitset.Set) {
	removed := sl.semi.RemoveSupersetsOfCapture(fullCarrier)
	if !s.tracking {
		return
	}
	for _, r := range removed {
		s.log.Push(changelog.Remove, change{pair: p, kind: semiKind, entry: r})
	}
}

// Delete removes both lists for (x, y), used when a group is absorbed by a
// merge. It does not journal per-entry removals, so Revert does not restore
// the deleted lists.
func (s *Store) Delete(x, y int) {
	delete(s.slots, MakePair(x, y))
}

// Pairs returns every pair currently tracked by the store, in map iteration
// order. Callers that need determinism should sort the result.
func (s *Store) Pairs() []Pair {
	out := make([]Pair, 0, len(s.slots))
	for p := range s.slots {
		out = append(out, p)
	}
	return out
}

// Revert pops the attached log back to (and including) the next Marker,
// undoing Add records by removing the journaled entry from the relevant
// list, and replaying Remove records via an unchecked force-add that
// bypasses the superset filter.
func (s *Store) Revert() {
	s.log.Revert(s.undoAdd, s.undoRemove)
}

func (s *Store) undoAdd(c change) {
	sl := s.slotFor(c.pair, false)
	if sl == nil {
		return
	}
	list := s.listOf(sl, c.kind)
	list.RemoveSupersetsOf(c.entry.Carrier)
}

func (s *Store) undoRemove(c change) {
	sl := s.slotFor(c.pair, true)
	list := s.listOf(sl, c.kind)
	list.AddNew(c.entry) // force add: bypasses the superset filter
}
