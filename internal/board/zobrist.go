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

package board

import (
	"sync"

	. "github.com/frankkopp/xiangqigo/internal/types"
)

// Key is a 64-bit Zobrist hash identifying a position (or its pawn-only
// or non-pawn-by-color subset).
type Key uint64

// zobristSeed is the fixed seed the source engine this design is derived
// from uses; kept identical so a recorded game's keys stay reproducible
// across reimplementations.
const zobristSeed uint64 = 18061995

// pieceSq[sq][color][pieceType] holds one pseudo-random value per
// (square, color, piece kind) triple. Index 0 of the piece-type axis
// (PtNone) is never read; it exists so PieceType can index directly.
var pieceSq [SqLength][ColorLength][PtLength]Key

// sideToMoveKey is XORed into key exactly when it is Red to move.
var sideToMoveKey Key

var zobristOnce sync.Once

func initZobrist() {
	zobristOnce.Do(func() {
		rng := NewPrnG(zobristSeed)
		for sq := Square(0); sq < SqNone; sq++ {
			for c := Color(0); c < ColorLength; c++ {
				for pt := PtNone; pt < PtLength; pt++ {
					pieceSq[sq][c][pt] = Key(rng.Rand64())
				}
			}
		}
		sideToMoveKey = Key(rng.Rand64())
	})
}

// pawnRelevant reports whether pt's Zobrist contribution belongs in the
// pawn-only key rather than a color's non-pawn key.
func pawnRelevant(pt PieceType) bool {
	return pt == Pawn
}

// keysFromScratch recomputes key, pawnKey and nonPawnKeys from the
// current mailbox and side to move, ignoring any incrementally
// maintained values. Used by FEN parsing and by the debug full-audit.
func (b *Board) keysFromScratch() (key, pawnKey Key, nonPawnKeys [ColorLength]Key) {
	for sq := Square(0); sq < SqNone; sq++ {
		p := b.pieces[sq]
		if p == PieceNone {
			continue
		}
		c := p.ColorOf()
		pt := p.TypeOf()
		key ^= pieceSq[sq][c][pt]
		if pawnRelevant(pt) {
			pawnKey ^= pieceSq[sq][c][pt]
		} else {
			nonPawnKeys[c] ^= pieceSq[sq][c][pt]
		}
	}
	if b.sideToMove == Red {
		key ^= sideToMoveKey
	}
	return key, pawnKey, nonPawnKeys
}
