/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package attacks builds the pre-computed attack tables the move generator
// and check detection read from: magic-indexed sliding tables for the
// Chariot (Rook) and Cannon, leg/eye-occupancy tables for the Horse
// (Knight) and Elephant (Bishop), and static per-square tables for the
// Advisor, General (King) and Pawn. Everything is built once, by the
// first call to Init, and is safe for concurrent read-only use afterwards.
package attacks

import (
	. "github.com/frankkopp/xiangqigo/internal/types"
)

// magicSeeds were found by a one-off offline search for multipliers that
// make the relevant-occupancy search below converge quickly; they are not
// load-bearing for correctness, only for Init speed. Indexed by file,
// mirroring the teacher's per-rank chess magic seed table.
var magicSeeds = [FileLength]uint64{
	728, 10316, 55013, 32803, 12281, 15100, 16645, 255, 346,
}

// magic holds everything needed to compute the sliding attack set of a
// Chariot or Cannon standing on one square: the relevant-occupancy mask,
// a two-lane multiplier pair and shift for the index formula, and the
// resulting attack-set table indexed by the computed key.
type magic struct {
	mask          Bitboard
	magic0, magic1 uint64
	shift         uint
	attacks       []Bitboard
}

// index computes the table slot for occ (already reduced to the
// relevant-occupancy bits, i.e. occ == occ.Intersection(m.mask)) using the
// two-lane generalisation of a Stockfish-style fancy magic index:
// index = ((occ.Lo*magic0) XOR (occ.Hi*magic1)) >> shift.
func (m *magic) index(occ Bitboard) uint {
	return uint((occ.Lo*m.magic0)^(occ.Hi*m.magic1)) >> m.shift
}

func (m *magic) attacksFor(occ Bitboard) Bitboard {
	relevant := occ.Intersection(m.mask)
	return m.attacks[m.index(relevant)]
}

var rookMagics [SqLength]magic

// The Cannon's magics are split into a rank-component (cannonRankMagics)
// and a file-component (cannonFileMagics) table per square (see cannonRankMask/cannonFileMask below for why the two
// cannot share the single combined, edge-truncated mask rookMagics uses).
var cannonRankMagics [SqLength]magic
var cannonFileMagics [SqLength]magic

// rookMask returns every square reachable by sliding one or more steps
// along a file or rank from sq, excluding sq itself and excluding the far
// edge square in each of the four directions (the edge square never
// needs to be part of the relevant-occupancy mask: whatever sits there,
// the slide already stops at or before it).
func rookMask(sq Square) Bitboard {
	mask := BbZero
	for _, d := range RookDirections {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			if edgeSquare(s, d) {
				break
			}
			mask = mask.WithBitSet(s)
		}
	}
	return mask
}

// cannonRankMask/cannonFileMask return every OTHER square sq's rank/file,
// with no edge truncation. A Cannon's attack set is not invariant to the
// far edge square's occupancy the way a Rook's is: whether that square
// holds a piece decides whether it is reached as a quiet destination or
// consumed as an unlanded screen (there is nothing beyond it to capture).
// The combined rank+file mask a Rook uses would need 17 relevant bits per
// square once the edge can't be dropped; splitting into an independent
// rank-only table (<=8 bits) and file-only table (<=9 bits), OR'd
// together, gets the same correctness far more cheaply.
func cannonRankMask(sq Square) Bitboard {
	mask := BbZero
	for _, d := range [2]Direction{East, West} {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			mask = mask.WithBitSet(s)
		}
	}
	return mask
}

func cannonFileMask(sq Square) Bitboard {
	mask := BbZero
	for _, d := range [2]Direction{North, South} {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			mask = mask.WithBitSet(s)
		}
	}
	return mask
}

// edgeSquare reports whether s is the last square the board allows in
// direction d, i.e. one further step would fall off. Occupancy of that
// square never changes where a slide stops (it stops there or earlier
// regardless), so it is excluded from relevant-occupancy masks.
func edgeSquare(s Square, d Direction) bool {
	switch d {
	case North:
		return s.RankOf() == Rank9
	case South:
		return s.RankOf() == Rank0
	case East:
		return s.FileOf() == FileI
	case West:
		return s.FileOf() == FileA
	}
	return false
}

// rookAttack computes the reference (brute-force) Chariot attack set from
// sq given the full board occupancy occ: slides in each of the four
// directions, stopping at and including the first occupied square.
func rookAttack(sq Square, occ Bitboard) Bitboard {
	attack := BbZero
	for _, d := range RookDirections {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			attack = attack.WithBitSet(s)
			if occ.Contains(s) {
				break
			}
		}
	}
	return attack
}

// cannonAxisAttack computes the reference Cannon attack set along the two
// directions of one axis (East/West or North/South): quiet moves slide
// like a Chariot up to (not including) the first occupied square; a
// capture requires jumping exactly one screen piece and lands on the
// first occupied square beyond it. The returned bitboard mixes both kinds
// - callers distinguish quiet from capture by testing occupancy of the
// destination, exactly as for every other piece. The full Cannon attack
// set is the union of the rank-axis and file-axis results.
func cannonAxisAttack(sq Square, occ Bitboard, dirs [2]Direction) Bitboard {
	attack := BbZero
	for _, d := range dirs {
		screened := false
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			if !screened {
				if occ.Contains(s) {
					screened = true
					continue
				}
				attack = attack.WithBitSet(s)
				continue
			}
			if occ.Contains(s) {
				attack = attack.WithBitSet(s)
				break
			}
		}
	}
	return attack
}

func cannonRankAttack(sq Square, occ Bitboard) Bitboard {
	return cannonAxisAttack(sq, occ, [2]Direction{East, West})
}

func cannonFileAttack(sq Square, occ Bitboard) Bitboard {
	return cannonAxisAttack(sq, occ, [2]Direction{North, South})
}

// initSlidingMagics runs a Carry-Rippler enumeration of every occupancy
// subset of mask and searches for a (magic0, magic1) multiplier pair that
// maps each subset to a distinct table slot, exactly as the teacher's
// single-lane initMagics does for orthodox chess - generalised to the
// two-lane 90-square index formula. refAttack supplies the reference
// attack function (rookAttack, cannonRankAttack or cannonFileAttack) the
// table is built from.
func initSlidingMagics(table *[SqLength]magic, maskFor func(Square) Bitboard, refAttack func(Square, Bitboard) Bitboard) {
	const maxSubsets = 1 << 15 // widest mask is the combined Rook mask, <=15 bits (corner squares)
	var occupancy [maxSubsets]Bitboard
	var reference [maxSubsets]Bitboard
	var epoch [maxSubsets]int

	for sq := Square(0); sq < SqNone; sq++ {
		m := &table[sq]
		m.mask = maskFor(sq)
		bits := m.mask.PopCount()
		m.shift = uint(64 - bits)
		if m.shift > 63 {
			m.shift = 0
		}

		size := 0
		occ := BbZero
		for {
			occupancy[size] = occ
			reference[size] = refAttack(sq, occ)
			size++
			occ = occ.Sub(m.mask).Intersection(m.mask)
			if occ.IsEmpty() {
				break
			}
		}

		m.attacks = make([]Bitboard, 1<<uint(bits))

		rng := NewPrnG(magicSeeds[sq.FileOf()] ^ uint64(sq)<<1)
		cnt := 0
		for i := 0; i < size; {
			for m.magic0 == 0 || m.magic1 == 0 {
				m.magic0 = rng.SparseRand()
				m.magic1 = rng.SparseRand()
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					m.magic0, m.magic1 = 0, 0
					break
				}
			}
		}
	}
}
