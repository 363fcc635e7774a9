// Package carrier implements the carrier list: a sequence
// of bit-set carriers kept free of redundant supersets, with the handful of
// set-algebra queries the VC builder runs against it on every work-queue
// pop.
//
// Grounded on original_source/src/hex/VCList.{hpp,cpp}.
package carrier

import (
	"github.com/sarchlab/benzene/bitset"
)

// Entry is one carrier in a List, optionally tagged with the empty-cell key
// that turns a FULL carrier into a SEMI connection, and a processed flag the
// AND/OR fixed point uses to avoid recombining the same carrier twice.
type Entry struct {
	Carrier bitset.Set
	Key     int // cell id of the SEMI's key; meaningful only if HasKey
	HasKey  bool
	old     bool
}

// List is a carrier list: add_new/try_add keep
// it free of redundant supersets, and it caches the running intersection
// (and the old-only intersection) so the builder doesn't re-scan on every
// query. SoftLimit, when non-zero, caps the number of entries retained,
// mirroring VCList::softlimit_ in original_source (once the cap is hit,
// entries are dropped from the front of the list first).
type List struct {
	entries []Entry

	dirtyIntersection bool
	intersection      bitset.Set

	dirtyOldIntersection bool
	oldIntersection      bitset.Set

	// SoftLimit bounds the number of entries the list retains; 0 means
	// unbounded.
	SoftLimit int
}

// Len returns the number of carriers currently stored.
func (l *List) Len() int { return len(l.entries) }

// Entries returns the stored entries in list order. Callers must not
// mutate the returned slice.
func (l *List) Entries() []Entry { return l.entries }

func (l *List) markDirty() {
	l.dirtyIntersection = true
	l.dirtyOldIntersection = true
}

// AddNew appends e without checking for redundancy. The caller must have
// already ensured no stored carrier is a superset of e.Carrier, per
// VCList::add in original_source.
func (l *List) AddNew(e Entry) {
	l.entries = append(l.entries, e)
	l.markDirty()
	l.enforceSoftLimit()
}

func (l *List) enforceSoftLimit() {
	if l.SoftLimit <= 0 || len(l.entries) <= l.SoftLimit {
		return
	}
	// Drop entries from the front of the slice, keeping the most recently
	// appended. A witness that SupersetOfAny moved to the front is among
	// the first to go.
	excess := len(l.entries) - l.SoftLimit
	l.entries = append([]Entry{}, l.entries[excess:]...)
	l.markDirty()
}

// SupersetOfAny reports whether some stored carrier is a subset of c (i.e.
// c is a superset of a stored carrier). On a hit, the witnessing entry is
// moved to the front as an MRU hint for the next lookup.
func (l *List) SupersetOfAny(c bitset.Set) bool {
	for i, e := range l.entries {
		if e.Carrier.IsSubsetOf(c) {
			l.moveToFront(i)
			return true
		}
	}
	return false
}

func (l *List) moveToFront(i int) {
	if i == 0 {
		return
	}
	e := l.entries[i]
	copy(l.entries[1:i+1], l.entries[:i])
	l.entries[0] = e
}

// RemoveSupersetsOf deletes every stored carrier that is a superset of c,
// returning whether any removal occurred.
func (l *List) RemoveSupersetsOf(c bitset.Set) bool {
	return len(l.removeSupersetsCapture(c)) > 0
}

// RemoveSupersetsOfCapture behaves like RemoveSupersetsOf but also returns
// the removed entries, so a caller enforcing a cross-list invariant (e.g.
// vcstore's FULL/SEMI cross invariant) can journal their removal.
func (l *List) RemoveSupersetsOfCapture(c bitset.Set) []Entry {
	return l.removeSupersetsCapture(c)
}

// TryAdd adds e if no stored carrier is already a subset of e.Carrier,
// first deleting any stored carrier that e.Carrier is a subset of. It
// returns whether e was added.
func (l *List) TryAdd(e Entry) bool {
	added, _ := l.TryAddCapture(e)
	return added
}

// TryAddCapture behaves like TryAdd but also returns the entries deleted as
// supersets of e.Carrier, so a caller journaling mutations (vcstore.Store)
// can replay their removal on revert.
func (l *List) TryAddCapture(e Entry) (added bool, removedSupersets []Entry) {
	if l.SupersetOfAny(e.Carrier) {
		return false, nil
	}
	removedSupersets = l.removeSupersetsCapture(e.Carrier)
	l.AddNew(e)
	return true, removedSupersets
}

func (l *List) removeSupersetsCapture(c bitset.Set) []Entry {
	var removed []Entry
	kept := l.entries[:0]
	for _, e := range l.entries {
		if c.IsSubsetOf(e.Carrier) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	if len(removed) > 0 {
		l.markDirty()
	}
	return removed
}

// RemoveAllContaining deletes every carrier intersecting mask, returning the
// removed entries so the caller can reshrink and reattempt them.
func (l *List) RemoveAllContaining(mask bitset.Set) []Entry {
	var removed []Entry
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.Carrier.Intersects(mask) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	if len(removed) > 0 {
		l.markDirty()
	}
	return removed
}

// Intersection returns the bit-wise AND of every stored carrier. An empty
// list's intersection is the all-ones identity, bitset.Capacity wide; since
// that is never meaningful on its own the builder must special-case
// l.Len == 0 before relying on this value.
func (l *List) Intersection() bitset.Set {
	if len(l.entries) == 0 {
		return bitset.Not(bitset.Set{})
	}
	if l.dirtyIntersection {
		l.recomputeIntersection()
	}
	return l.intersection
}

func (l *List) recomputeIntersection() {
	if len(l.entries) == 0 {
		l.intersection = bitset.Set{}
		l.dirtyIntersection = false
		return
	}
	acc := l.entries[0].Carrier
	for _, e := range l.entries[1:] {
		acc = bitset.And(acc, e.Carrier)
	}
	l.intersection = acc
	l.dirtyIntersection = false
}

// OldIntersection returns the bit-wise AND of every entry flagged old (see
// MarkOld), used by the OR step to decide whether the list is still worth
// re-queueing once fresh material arrives.
func (l *List) OldIntersection() bitset.Set {
	if l.dirtyOldIntersection {
		l.recomputeOldIntersection()
	}
	return l.oldIntersection
}

func (l *List) recomputeOldIntersection() {
	first := true
	var acc bitset.Set
	for _, e := range l.entries {
		if !e.old {
			continue
		}
		if first {
			acc = e.Carrier
			first = false
			continue
		}
		acc = bitset.And(acc, e.Carrier)
	}
	if first {
		acc = bitset.Set{}
	}
	l.oldIntersection = acc
	l.dirtyOldIntersection = false
}

// MarkOld flags every current entry as already processed by the AND/OR
// rule, so later queries can distinguish fresh material from what has
// already driven a combination.
func (l *List) MarkOld() {
	for i := range l.entries {
		l.entries[i].old = true
	}
	l.dirtyOldIntersection = true
}

// GreedyUnion unions a subset of carriers chosen greedily to keep shrinking
// a running intersection with the carriers already picked: start from the
// smallest carrier, repeatedly fold in whichever remaining carrier shrinks
// the running intersection the most, stopping once no candidate shrinks it
// further.
func (l *List) GreedyUnion() bitset.Set {
	if len(l.entries) == 0 {
		return bitset.Set{}
	}
	remaining := make([]bitset.Set, len(l.entries))
	for i, e := range l.entries {
		remaining[i] = e.Carrier
	}

	used := make([]bool, len(remaining))
	best := 0
	for i, c := range remaining {
		if c.Count() < remaining[best].Count() {
			best = i
		}
	}
	used[best] = true
	union := remaining[best]
	inter := remaining[best]

	for {
		improved := -1
		improvedInter := inter
		for i, c := range remaining {
			if used[i] {
				continue
			}
			candidate := bitset.And(inter, c)
			if candidate.Count() < improvedInter.Count() {
				improved = i
				improvedInter = candidate
			}
		}
		if improved < 0 {
			break
		}
		used[improved] = true
		union = bitset.Or(union, remaining[improved])
		inter = improvedInter
	}
	return union
}
