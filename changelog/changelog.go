// Package changelog implements the undo log: a stack of
// (action, datum) records with push/top/pop/clear, scoped by markers so a
// caller can roll back to a known point without replaying the whole log.
//
// Grounded on original_source/src/util/ChangeLog.hpp; the push/pop/top naming
// and the dedicated Marker action both carry over directly. Markers get a
// short sortable xid.ID rather than a bare sequence counter, so nested
// rollback scopes stay distinguishable in trace output.
package changelog

import (
	"fmt"

	"github.com/rs/xid"
)

// Action identifies what kind of change a Record represents.
type Action int

const (
	// Add records that Datum was added to the tracked structure.
	Add Action = iota
	// Remove records that Datum was removed from the tracked structure.
	Remove
	// Processed records that Datum was consumed from a work queue, so a
	// revert can re-enqueue it.
	Processed
	// Marker is a scope boundary carrying no data of its own.
	Marker
)

// String renders the action name for trace output.
func (a Action) String() string {
	switch a {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Processed:
		return "processed"
	case Marker:
		return "marker"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Record is one entry in a Log[T]: an action paired with the datum it
// applies to. Marker records carry the zero value of T.
type Record[T any] struct {
	Action Action
	Datum  T
	id     xid.ID // only set for Marker records
}

// MarkerID returns the marker's sortable identifier. Calling it on a
// non-Marker record panics.
func (r Record[T]) MarkerID() xid.ID {
	if r.Action != Marker {
		panic("changelog: MarkerID called on a non-marker record")
	}
	return r.id
}

// Log is a stack of Records over some datum type T, with marker-delimited
// scopes. The zero value is an empty, ready-to-use log.
type Log[T any] struct {
	records []Record[T]
}

// Push appends an Add or Remove record.
func (l *Log[T]) Push(action Action, datum T) {
	if action == Marker {
		panic("changelog: use PushMarker to push a marker record")
	}
	l.records = append(l.records, Record[T]{Action: action, Datum: datum})
}

// PushMarker pushes a new scope boundary and returns its ID, which
// RevertToMarker uses to find it again.
func (l *Log[T]) PushMarker() xid.ID {
	id := xid.New()
	l.records = append(l.records, Record[T]{Action: Marker, id: id})
	return id
}

// Top returns the most recently pushed record. It panics if the log is
// empty, matching ChangeLog<T>::Top's precondition in original_source.
func (l *Log[T]) Top() Record[T] {
	if len(l.records) == 0 {
		panic("changelog: Top called on an empty log")
	}
	return l.records[len(l.records)-1]
}

// Pop removes and returns the most recently pushed record.
func (l *Log[T]) Pop() Record[T] {
	r := l.Top()
	l.records = l.records[:len(l.records)-1]
	return r
}

// Empty reports whether the log has no records.
func (l *Log[T]) Empty() bool {
	return len(l.records) == 0
}

// Len returns the number of records currently on the log.
func (l *Log[T]) Len() int {
	return len(l.records)
}

// Clear discards every record.
func (l *Log[T]) Clear() {
	l.records = l.records[:0]
}

// Revert pops records one at a time, calling undoAdd for each Add record
// and undoRemove for each Remove record, until (and including) the next
// Marker record is popped, or the log is exhausted. It returns the popped
// marker's ID, or the zero ID if the log ran dry first.
//
// This mirrors ChangeLog<T>::RevertToTop in original_source: undo runs in
// reverse push order so later changes are unwound before earlier ones.
func (l *Log[T]) Revert(undoAdd, undoRemove func(datum T)) xid.ID {
	for !l.Empty() {
		r := l.Pop()
		switch r.Action {
		case Marker:
			return r.id
		case Add:
			undoAdd(r.Datum)
		case Remove:
			undoRemove(r.Datum)
		case Processed:
			// Processed entries only matter to a work queue's own revert
			// hook; plain Add/Remove replay ignores them.
		}
	}
	return xid.ID{}
}
