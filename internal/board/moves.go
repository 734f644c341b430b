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
	"fmt"

	"github.com/frankkopp/xiangqigo/internal/assert"
	"github.com/frankkopp/xiangqigo/internal/attacks"
	. "github.com/frankkopp/xiangqigo/internal/types"
)

// IllegalMoveKind classifies why a move could not be applied.
type IllegalMoveKind int

const (
	// NoPieceAtOrigin means m's From square is empty.
	NoPieceAtOrigin IllegalMoveKind = iota
	// WrongColorAtOrigin means the piece on m's From square does not
	// belong to the side to move.
	WrongColorAtOrigin
)

// IllegalMoveError is returned by DoMove when m cannot be applied to the
// current position at all (as opposed to being applicable but leaving
// the mover's own General in check, which DoMove accepts; callers detect
// that afterwards with IsCheck and undo the move).
type IllegalMoveError struct {
	Kind IllegalMoveKind
	Move Move
}

func (e *IllegalMoveError) Error() string {
	switch e.Kind {
	case NoPieceAtOrigin:
		return fmt.Sprintf("illegal move %s: no piece on origin square", e.Move.String())
	case WrongColorAtOrigin:
		return fmt.Sprintf("illegal move %s: origin piece does not belong to side to move", e.Move.String())
	default:
		return fmt.Sprintf("illegal move %s", e.Move.String())
	}
}

// DoMove applies m to the position. m is assumed pseudo-legal in every
// respect the move generator itself guarantees (piece geometry, own-side
// masking); DoMove only re-checks the two things a caller could get
// wrong by constructing a Move by hand: that the origin is occupied and
// that it is occupied by the side to move. On success a state record is
// pushed so UndoMove can restore the prior position exactly.
func (b *Board) DoMove(m Move) error {
	from, to := m.From(), m.To()
	moved := b.pieces[from]
	if moved == PieceNone {
		return &IllegalMoveError{Kind: NoPieceAtOrigin, Move: m}
	}
	if moved.ColorOf() != b.sideToMove {
		return &IllegalMoveError{Kind: WrongColorAtOrigin, Move: m}
	}

	captured := b.pieces[to]

	b.history = append(b.history, state{
		move:           m,
		movedPiece:     moved,
		capturedPiece:  captured,
		key:            b.key,
		pawnKey:        b.pawnKey,
		nonPawnKeys:    b.nonPawnKeys,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
	})

	if captured != PieceNone {
		b.removePiece(captured, to)
		b.halfMoveClock = 0
	} else if moved.TypeOf() == Pawn {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	b.removePiece(moved, from)
	b.putPiece(moved, to)

	if b.sideToMove == Black {
		b.fullMoveNumber++
	}
	b.sideToMove = b.sideToMove.Flip()
	b.key ^= sideToMoveKey

	if assert.DEBUG {
		assert.Assert(b.pieces[from] == PieceNone, "DoMove: origin %s still occupied after move", from.String())
		assert.Assert(b.pieces[to] == moved, "DoMove: destination %s does not hold moved piece", to.String())
	}
	b.fullAudit()

	return nil
}

// UndoMove reverses the most recent DoMove. It is a programming error to
// call UndoMove on a Board with no history; like the teacher's own undo
// path, that is asserted in debug builds and otherwise left as undefined
// behaviour rather than plumbed through an error return on every call.
func (b *Board) UndoMove() {
	if assert.DEBUG {
		assert.Assert(len(b.history) > 0, "UndoMove: no move to undo")
	}
	last := len(b.history) - 1
	st := b.history[last]
	b.history = b.history[:last]

	b.sideToMove = b.sideToMove.Flip()

	b.removePiece(st.movedPiece, st.move.To())
	b.putPiece(st.movedPiece, st.move.From())
	if st.capturedPiece != PieceNone {
		b.putPiece(st.capturedPiece, st.move.To())
	}

	b.key = st.key
	b.pawnKey = st.pawnKey
	b.nonPawnKeys = st.nonPawnKeys
	b.halfMoveClock = st.halfMoveClock
	b.fullMoveNumber = st.fullMoveNumber

	b.fullAudit()
}

// MakeNullMove flips the side to move without moving a piece, for null-
// move search pruning. No bitboard or mailbox state changes, so the
// matching UnmakeNullMove only has to flip the side back and restore the
// key.
func (b *Board) MakeNullMove() {
	b.history = append(b.history, state{
		move:          MoveNone,
		key:           b.key,
		pawnKey:       b.pawnKey,
		nonPawnKeys:   b.nonPawnKeys,
		halfMoveClock: b.halfMoveClock,
	})
	b.sideToMove = b.sideToMove.Flip()
	b.key ^= sideToMoveKey
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove() {
	if assert.DEBUG {
		assert.Assert(len(b.history) > 0, "UnmakeNullMove: no null move to undo")
	}
	last := len(b.history) - 1
	st := b.history[last]
	b.history = b.history[:last]

	b.sideToMove = b.sideToMove.Flip()
	b.key = st.key
	b.pawnKey = st.pawnKey
	b.nonPawnKeys = st.nonPawnKeys
	b.halfMoveClock = st.halfMoveClock
}

// IsAttacked reports whether sq is attacked by any piece of color
// bySide. For the Rook, Cannon, Elephant, Advisor and General it works in
// reverse of normal move generation: it computes the attack set a piece
// of that kind would have if it stood on sq, and checks whether bySide
// actually has a piece of that kind on one of those squares. This is
// valid because those kinds attack symmetrically (if X on a attacks b,
// then X on b attacks a). The Horse is not symmetric - its leg is the
// square next to the Horse, not next to its target - so each bySide
// Horse's own attack set is tested instead; the Pawn is the other
// asymmetric case and is handled by pawnAttacksSquare. Finally, the
// flying-general rule is tested with sq standing in for a hypothetical
// own General (facesGeneral).
func (b *Board) IsAttacked(sq Square, bySide Color) bool {
	occ := b.AllOccupancy()

	if attacks.RookAttacks(sq, occ).Intersection(b.piecesBb[bySide][Rook]).PopCount() > 0 {
		return true
	}
	if attacks.CannonAttacks(sq, occ).Intersection(b.piecesBb[bySide][Cannon]).PopCount() > 0 {
		return true
	}
	horses := b.piecesBb[bySide][Knight]
	for !horses.IsEmpty() {
		if attacks.HorseAttacks(horses.PopLsb(), occ).Contains(sq) {
			return true
		}
	}
	if attacks.ElephantAttacks(sq, occ).Intersection(b.piecesBb[bySide][Bishop]).PopCount() > 0 {
		return true
	}
	if attacks.AdvisorAttacks(sq).Intersection(b.piecesBb[bySide][Advisor]).PopCount() > 0 {
		return true
	}
	if attacks.GeneralAttacks(sq).Intersection(b.piecesBb[bySide][King]).PopCount() > 0 {
		return true
	}
	if b.pawnAttacksSquare(sq, bySide) {
		return true
	}
	return b.facesGeneral(sq, bySide)
}

// facesGeneral reports whether bySide's General stands on sq's file with
// no piece between them - the flying-general rule, applied with sq
// standing in for a hypothetical General of the opposite color. This is
// what lets is_attacked double as both ordinary check detection (sq is
// the real General's square) and a King move generator's "would this
// square expose me" filter (sq is a candidate destination).
func (b *Board) facesGeneral(sq Square, bySide Color) bool {
	enemyGeneral := b.generalSquare[bySide]
	if sq.FileOf() != enemyGeneral.FileOf() {
		return false
	}
	return Between(sq, enemyGeneral).Intersection(b.AllOccupancy()).IsEmpty()
}

// pawnAttacksSquare reports whether any bySide Pawn attacks sq. It
// enumerates the squares a bySide Pawn would have to stand on to do so,
// rather than reusing the forward PawnAttacks table in reverse: once a
// Pawn has crossed the river its attack set gains two sideways targets,
// and that extra condition is keyed off the attacker's own square, not
// sq, so it cannot be recovered by flipping color on a per-square table.
func (b *Board) pawnAttacksSquare(sq Square, bySide Color) bool {
	originRank := int(sq.RankOf()) - bySide.ForwardRankStep()
	if originRank >= 0 && originRank < RankLength {
		origin := SquareOf(sq.FileOf(), Rank(originRank))
		if b.piecesBb[bySide][Pawn].Contains(origin) {
			return true
		}
	}
	if sq.OwnSide(bySide.Flip()) {
		f := int(sq.FileOf())
		for _, df := range [2]int{1, -1} {
			nf := f + df
			if nf < 0 || nf >= FileLength {
				continue
			}
			origin := SquareOf(File(nf), sq.RankOf())
			if b.piecesBb[bySide][Pawn].Contains(origin) {
				return true
			}
		}
	}
	return false
}

// IsCheck reports whether color c's General is currently attacked. Since
// IsAttacked already folds in the flying-general rule (facesGeneral,
// evaluated with c's own General's square standing in for sq), a facing
// pair of Generals is detected here with no extra call.
func (b *Board) IsCheck(c Color) bool {
	return b.IsAttacked(b.generalSquare[c], c.Flip())
}

// GivesCheck reports whether playing m would leave the opponent's
// General in check. It applies m, tests, and unmakes it, leaving the
// position unchanged.
func (b *Board) GivesCheck(m Move) bool {
	mover := b.pieces[m.From()].ColorOf()
	if err := b.DoMove(m); err != nil {
		return false
	}
	defer b.UndoMove()
	return b.IsCheck(mover.Flip())
}
