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

// Package movegen enumerates moves on a board.Board: pseudo-legal
// generation per piece kind, plus a legality filter that walks each
// candidate through DoMove/UndoMove and rejects any that leaves the
// mover's own General in check.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/xiangqigo/internal/attacks"
	"github.com/frankkopp/xiangqigo/internal/board"
	myLogging "github.com/frankkopp/xiangqigo/internal/logging"
	"github.com/frankkopp/xiangqigo/internal/moveslice"
	. "github.com/frankkopp/xiangqigo/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.Get("movegen")
	}
	return log
}

// maxMoves bounds the reusable move slice's initial capacity. Xiangqi's
// branching factor is well under this even in the busiest middlegame
// positions; the slice still grows past it via append if it ever needs
// to, same as the teacher's own reusable-slice sizing.
const maxMoves = 128

// Filter selects which subset of moves Generate returns.
type Filter int

const (
	// All returns every pseudo-legal move, quiet and capture alike.
	All Filter = iota
	// Captures returns only pseudo-legal captures.
	Captures
	// Quiets returns only pseudo-legal non-captures.
	Quiets
	// Evasions returns legal moves for a side already in check. The
	// generation algorithm is identical to Legal; the distinct name
	// exists for a caller that wants to document at the call site that
	// it only makes sense when the side to move is in check, not
	// because check evasion gets a specialised, narrower generator -
	// this is a correctness-first core, not a search front-end that
	// would want that optimisation.
	Evasions
	// Legal returns only moves that do not leave the mover's own
	// General in check.
	Legal
)

// pieceOrder is the fixed, deterministic iteration order Generate walks
// piece kinds in. With no in-core evaluator to rank moves by strength,
// this is the only ordering the generator offers a caller - stable
// across calls, but carrying no notion of "better first".
var pieceOrder = [7]PieceType{Pawn, Cannon, Rook, Knight, Bishop, Advisor, King}

// Generator holds a reusable move buffer, avoiding an allocation on
// every Generate call the way the teacher's Movegen reuses its
// moveslice.MoveSlice fields.
type Generator struct {
	moves *moveslice.MoveSlice
}

// NewGenerator returns a ready-to-use Generator.
func NewGenerator() *Generator {
	return &Generator{moves: moveslice.NewMoveSlice(maxMoves)}
}

// Generate returns the moves of b matching filter. The returned slice is
// owned by the Generator and is overwritten by the next Generate call;
// callers that need to keep it across calls must Clone it.
func (g *Generator) Generate(b *board.Board, filter Filter) *moveslice.MoveSlice {
	getLog().Debugf("generating moves for %s, filter %d", b.SideToMove().Str(), filter)
	g.moves.Clear()

	side := b.SideToMove()
	occ := b.AllOccupancy()
	ownOcc := b.Occupancy(side)
	enemyOcc := b.Occupancy(side.Flip())

	wantQuiets := filter != Captures
	wantCaptures := filter != Quiets

	for _, pt := range pieceOrder {
		from := b.PiecesBb(side, pt)
		for from != BbZero {
			sq := from.Lsb()
			from = from.WithBitCleared(sq)

			targets := attacks.AttacksFrom(pt, side, sq, occ).AndNot(ownOcc)
			if wantQuiets {
				quiets := targets.AndNot(enemyOcc)
				for quiets != BbZero {
					to := quiets.Lsb()
					quiets = quiets.WithBitCleared(to)
					g.moves.PushBack(NewMove(sq, to, Quiet))
				}
			}
			if wantCaptures {
				caps := targets.Intersection(enemyOcc)
				for caps != BbZero {
					to := caps.Lsb()
					caps = caps.WithBitCleared(to)
					g.moves.PushBack(NewMove(sq, to, Capture))
				}
			}
		}
	}

	if filter == Legal || filter == Evasions {
		g.filterLegal(b, side)
	}

	return g.moves
}

// filterLegal removes every move in g.moves that would leave side's own
// General in check, by actually playing and unplaying each one - the
// same make/test/unmake shape as board.Board.GivesCheck, just applied
// from the mover's perspective instead of the opponent's.
func (g *Generator) filterLegal(b *board.Board, side Color) {
	g.moves.Filter(func(i int) bool {
		m := g.moves.At(i)
		if err := b.DoMove(m); err != nil {
			return false
		}
		stillInCheck := b.IsCheck(side)
		b.UndoMove()
		return !stillInCheck
	})
}

// HasLegalMove reports whether the side to move has at least one legal
// move - used by checkmate/stalemate detection, where a caller only needs
// a boolean. It builds the full legal move list in g and tests whether it
// is empty; it does not stop at the first legal move.
func HasLegalMove(g *Generator, b *board.Board) bool {
	return g.Generate(b, Legal).Len() > 0
}
