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

// Package board implements the Xiangqi position representation: a
// mailbox plus per-color-per-kind bitboards, Zobrist keying, FEN-style
// notation, and make/unmake move application. It depends only on
// internal/types and internal/attacks; it knows nothing about search,
// evaluation or move ordering.
package board

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/frankkopp/xiangqigo/internal/assert"
	"github.com/frankkopp/xiangqigo/internal/config"
	myLogging "github.com/frankkopp/xiangqigo/internal/logging"
	. "github.com/frankkopp/xiangqigo/internal/types"
)

var log *logging.Logger

func init() {
	initZobrist()
}

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.Get("board")
	}
	return log
}

// state is the per-ply snapshot needed to undo one make_move or
// make_null_move call. It is pushed before the move is applied and
// popped wholesale on unmake - no keys are recomputed on undo, the
// pre-move keys are simply restored from the snapshot.
type state struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	key            Key
	pawnKey        Key
	nonPawnKeys    [ColorLength]Key
	halfMoveClock  int
	fullMoveNumber int
}

// Board is a single Xiangqi position plus its undo history. It is not
// safe for concurrent use; a search collaborator that wants parallelism
// clones one Board per worker via Copy.
type Board struct {
	pieces        [SqLength]Piece
	piecesBb      [ColorLength][PtLength]Bitboard
	occupiedBb    [ColorLength]Bitboard
	generalSquare [ColorLength]Square

	sideToMove     Color
	halfMoveClock  int
	fullMoveNumber int

	key         Key
	pawnKey     Key
	nonPawnKeys [ColorLength]Key

	history []state
}

// NewBoard returns a Board in the Xiangqi start position.
func NewBoard() *Board {
	b, err := ParseFEN(StartPositionString)
	if err != nil {
		panic(fmt.Sprintf("board: start position string is malformed: %s", err))
	}
	return b
}

// newEmptyBoard allocates a Board with no pieces placed, ready for a FEN
// parser to fill in.
func newEmptyBoard() *Board {
	return &Board{
		history: make([]state, 0, config.Settings.Board.HistoryBlockSize),
	}
}

// Copy returns an independent clone: bitboards, mailbox, current state
// and the undo history truncated at the current ply. Mutating the clone
// never affects the original, and vice versa - the two Boards share no
// backing storage.
func (b *Board) Copy() *Board {
	clone := *b
	clone.history = make([]state, len(b.history), cap(b.history))
	copy(clone.history, b.history)
	return &clone
}

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.pieces[sq]
}

// PiecesBb returns the bitboard of every piece of kind pt belonging to c.
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.piecesBb[c][pt]
}

// Occupancy returns every square occupied by a piece of color c.
func (b *Board) Occupancy(c Color) Bitboard {
	return b.occupiedBb[c]
}

// AllOccupancy returns every occupied square on the board.
func (b *Board) AllOccupancy() Bitboard {
	return b.occupiedBb[Red].Union(b.occupiedBb[Black])
}

// GeneralSquare returns the square color c's General stands on.
func (b *Board) GeneralSquare(c Color) Square {
	return b.generalSquare[c]
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// Ply returns the number of moves made so far (the depth of the undo
// history).
func (b *Board) Ply() int {
	return len(b.history)
}

// Key returns the position's full Zobrist key.
func (b *Board) Key() Key {
	return b.key
}

// PawnKey returns the Zobrist key restricted to Pawns.
func (b *Board) PawnKey() Key {
	return b.pawnKey
}

// NonPawnKeys returns the Zobrist keys restricted to non-Pawn pieces,
// one per color.
func (b *Board) NonPawnKeys() [ColorLength]Key {
	return b.nonPawnKeys
}

// IsCapture reports whether m, played on the current position, captures
// a piece.
func (b *Board) IsCapture(m Move) bool {
	return b.pieces[m.To()] != PieceNone
}

// IsQuiet is the complement of IsCapture.
func (b *Board) IsQuiet(m Move) bool {
	return !b.IsCapture(m)
}

// IsNoisy is an alias for IsCapture: Xiangqi has no promotions, so
// "noisy" and "capture" coincide.
func (b *Board) IsNoisy(m Move) bool {
	return b.IsCapture(m)
}

// putPiece places p on sq: sets the mailbox, sets the bitboard bit, and
// XORs in the Zobrist contribution. sq must currently be empty.
func (b *Board) putPiece(p Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.pieces[sq] == PieceNone, "putPiece: %s is already occupied", sq.String())
	}
	b.pieces[sq] = p
	c := p.ColorOf()
	pt := p.TypeOf()
	b.piecesBb[c][pt] = b.piecesBb[c][pt].WithBitSet(sq)
	b.occupiedBb[c] = b.occupiedBb[c].WithBitSet(sq)
	b.key ^= pieceSq[sq][c][pt]
	if pawnRelevant(pt) {
		b.pawnKey ^= pieceSq[sq][c][pt]
	} else {
		b.nonPawnKeys[c] ^= pieceSq[sq][c][pt]
	}
	if pt == King {
		b.generalSquare[c] = sq
	}
}

// removePiece clears sq, which must currently hold p, and XORs its
// Zobrist contribution back out.
func (b *Board) removePiece(p Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.pieces[sq] == p, "removePiece: %s does not hold %s", sq.String(), p.Char())
	}
	b.pieces[sq] = PieceNone
	c := p.ColorOf()
	pt := p.TypeOf()
	b.piecesBb[c][pt] = b.piecesBb[c][pt].WithBitCleared(sq)
	b.occupiedBb[c] = b.occupiedBb[c].WithBitCleared(sq)
	b.key ^= pieceSq[sq][c][pt]
	if pawnRelevant(pt) {
		b.pawnKey ^= pieceSq[sq][c][pt]
	} else {
		b.nonPawnKeys[c] ^= pieceSq[sq][c][pt]
	}
}

// fullAudit recomputes the Zobrist keys from scratch and re-derives
// every invariant §7/§8 of the design names, panicking on the first
// divergence. Gated by config.Settings.Debug.FullAudit since it is
// O(squares) per call; meant for test and debug builds, not hot search.
func (b *Board) fullAudit() {
	if !config.Settings.Debug.FullAudit {
		return
	}
	key, pawnKey, nonPawnKeys := b.keysFromScratch()
	if key != b.key {
		panic(fmt.Sprintf("board: key corrupted: have %x want %x", b.key, key))
	}
	if pawnKey != b.pawnKey {
		panic(fmt.Sprintf("board: pawnKey corrupted: have %x want %x", b.pawnKey, pawnKey))
	}
	if nonPawnKeys != b.nonPawnKeys {
		panic(fmt.Sprintf("board: nonPawnKeys corrupted: have %v want %v", b.nonPawnKeys, nonPawnKeys))
	}
	redBb, blackBb := BbZero, BbZero
	for sq := Square(0); sq < SqNone; sq++ {
		p := b.pieces[sq]
		if p == PieceNone {
			continue
		}
		if !b.piecesBb[p.ColorOf()][p.TypeOf()].Contains(sq) {
			panic(fmt.Sprintf("board: mailbox/bitboard mismatch at %s", sq.String()))
		}
		if p.ColorOf() == Red {
			redBb = redBb.WithBitSet(sq)
		} else {
			blackBb = blackBb.WithBitSet(sq)
		}
	}
	if redBb != b.occupiedBb[Red] || blackBb != b.occupiedBb[Black] {
		panic("board: occupancy bitboard does not match mailbox")
	}
	if !redBb.Intersection(blackBb).IsEmpty() {
		panic("board: Red and Black occupancy bitboards overlap")
	}
}
