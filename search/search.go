// Package search defines the narrow trait external collaborators of the VC
// engine implement, modeled on HexAbSearch, HexUctSearchPolicy, and the
// player class hierarchy: consumers as trait objects with a small, explicit
// interface (evaluate, generate_moves, execute_move, undo_move,
// enter_state). Move selection itself is out of scope; this package only
// names the boundary the engine's callers are expected to implement.
//
// Grounded on api/driver.go's Driver interface: a small, explicit method
// set an external collaborator (there, the accelerator driver; here, a
// move-search policy) implements while the core only holds it by reference
// for the duration of a call.
package search

import "github.com/sarchlab/benzene/boardgeo"

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_search.go github.com/sarchlab/benzene/search Collaborator

// Collaborator is the interface an external move-search policy implements
// to drive a position against the VC engine's queries, without the engine
// depending on any concrete search implementation.
type Collaborator interface {
	// Evaluate scores pos from the perspective of the side to play.
	Evaluate(pos *boardgeo.Position) float64

	// GenerateMoves returns the candidate moves the collaborator wants
	// considered at pos, in the order it wants them tried.
	GenerateMoves(pos *boardgeo.Position) []boardgeo.Cell

	// ExecuteMove plays move on pos for the side to play.
	ExecuteMove(pos *boardgeo.Position, move boardgeo.Cell) error

	// UndoMove reverses a prior ExecuteMove of move.
	UndoMove(pos *boardgeo.Position, move boardgeo.Cell) error

	// EnterState notifies the collaborator that pos is now the position of
	// record, e.g. so it can warm a transposition table entry.
	EnterState(pos *boardgeo.Position) error
}
