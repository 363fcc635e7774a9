package boardgeo

import "github.com/sarchlab/benzene/bitset"

// zobristBlack and zobristWhite hold one deterministic pseudo-random 64-bit
// key per cell, for each colour. Position.Hash XORs together the keys of
// every occupied cell plus a side-to-move key, the same construction
// original_source's Hash.hpp. Keys are generated at package init from a
// fixed seed (not crypto/rand) so that a hash is stable across runs given
// equal contents.
var (
	zobristBlack  [bitset.Capacity]uint64
	zobristWhite  [bitset.Capacity]uint64
	zobristToPlay [3]uint64 // indexed by Color (Black=1, White=2); index 0 unused
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64, a small, fast, deterministic PRNG -- good enough for
		// a fixed table of cache keys, not for cryptography.
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z = z ^ (z >> 31)
		return z
	}
	for i := range zobristBlack {
		zobristBlack[i] = next()
		zobristWhite[i] = next()
	}
	zobristToPlay[Black] = next()
	zobristToPlay[White] = next()
}

// Hash returns a 64-bit Zobrist-style hash of the position's stone sets and
// side to play. External collaborators may use it as a cache key; any
// cache built on top must re-verify on hit since this core has no
// protection against hash collisions.
func (p *Position) Hash() uint64 {
	var h uint64
	p.black.ForEach(func(bit int) bool {
		h ^= zobristBlack[bit]
		return true
	})
	p.white.ForEach(func(bit int) bool {
		h ^= zobristWhite[bit]
		return true
	})
	h ^= zobristToPlay[p.toPlay]
	return h
}
