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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqigo/internal/attacks"
	. "github.com/frankkopp/xiangqigo/internal/types"
)

func minimalBoard() *Board {
	b := newEmptyBoard()
	b.putPiece(MakePiece(Red, King), SquareOf(FileE, Rank0))
	b.putPiece(MakePiece(Black, King), SquareOf(FileE, Rank9))
	b.sideToMove = Red
	return b
}

func TestDoMoveThenUndoMoveRestoresEverything(t *testing.T) {
	b := NewBoard()
	beforeKey := b.Key()
	beforePawnKey := b.PawnKey()
	beforeNonPawn := b.NonPawnKeys()
	beforeSide := b.SideToMove()

	m := NewMove(SquareOf(FileA, Rank0), SquareOf(FileA, Rank2), Quiet)
	require.NoError(t, b.DoMove(m))
	assert.NotEqual(t, beforeKey, b.Key())
	assert.Equal(t, beforeSide.Flip(), b.SideToMove())
	assert.Equal(t, PieceNone, b.PieceAt(SquareOf(FileA, Rank0)))
	assert.Equal(t, MakePiece(Red, Rook), b.PieceAt(SquareOf(FileA, Rank2)))

	b.UndoMove()
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, beforePawnKey, b.PawnKey())
	assert.Equal(t, beforeNonPawn, b.NonPawnKeys())
	assert.Equal(t, beforeSide, b.SideToMove())
	assert.Equal(t, MakePiece(Red, Rook), b.PieceAt(SquareOf(FileA, Rank0)))
	assert.Equal(t, PieceNone, b.PieceAt(SquareOf(FileA, Rank2)))
}

func TestDoMoveCaptureRemovesPieceAndResetsClock(t *testing.T) {
	b := minimalBoard()
	b.putPiece(MakePiece(Red, Rook), SquareOf(FileB, Rank2))
	b.putPiece(MakePiece(Black, Pawn), SquareOf(FileB, Rank7))
	b.halfMoveClock = 12

	m := NewMove(SquareOf(FileB, Rank2), SquareOf(FileB, Rank7), Capture)
	require.NoError(t, b.DoMove(m))
	assert.Equal(t, 0, b.halfMoveClock)
	assert.Equal(t, MakePiece(Red, Rook), b.PieceAt(SquareOf(FileB, Rank7)))

	b.UndoMove()
	assert.Equal(t, 12, b.halfMoveClock)
	assert.Equal(t, MakePiece(Black, Pawn), b.PieceAt(SquareOf(FileB, Rank7)))
	assert.Equal(t, MakePiece(Red, Rook), b.PieceAt(SquareOf(FileB, Rank2)))
}

func TestDoMoveRejectsEmptyOrigin(t *testing.T) {
	b := minimalBoard()
	err := b.DoMove(NewMove(SquareOf(FileA, Rank1), SquareOf(FileA, Rank2), Quiet))
	require.Error(t, err)
	var illegal *IllegalMoveError
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, NoPieceAtOrigin, illegal.Kind)
}

func TestDoMoveRejectsWrongColorOrigin(t *testing.T) {
	b := minimalBoard()
	b.putPiece(MakePiece(Black, Rook), SquareOf(FileB, Rank2))
	err := b.DoMove(NewMove(SquareOf(FileB, Rank2), SquareOf(FileB, Rank5), Quiet))
	require.Error(t, err)
	var illegal *IllegalMoveError
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, WrongColorAtOrigin, illegal.Kind)
}

func TestMakeNullMoveTogglesSideOnly(t *testing.T) {
	b := NewBoard()
	beforeMailbox := b.pieces
	b.MakeNullMove()
	assert.Equal(t, Black, b.SideToMove())
	assert.Equal(t, beforeMailbox, b.pieces)
	b.UnmakeNullMove()
	assert.Equal(t, Red, b.SideToMove())
}

func TestFlyingGeneralsIsCheck(t *testing.T) {
	b := newEmptyBoard()
	b.putPiece(MakePiece(Red, King), SquareOf(FileE, Rank0))
	b.putPiece(MakePiece(Black, King), SquareOf(FileE, Rank9))
	b.sideToMove = Red
	assert.True(t, b.IsCheck(Red))
	assert.True(t, b.IsCheck(Black))

	b.putPiece(MakePiece(Red, Advisor), SquareOf(FileE, Rank1))
	assert.False(t, b.IsCheck(Red))
	assert.False(t, b.IsCheck(Black))
}

func TestIsAttackedByCannonThroughScreen(t *testing.T) {
	attacks.Init()
	b := minimalBoard()
	b.putPiece(MakePiece(Red, Cannon), SquareOf(FileB, Rank2))
	b.putPiece(MakePiece(Red, Pawn), SquareOf(FileB, Rank5))
	target := SquareOf(FileB, Rank9)
	assert.True(t, b.IsAttacked(target, Red))

	b.removePiece(MakePiece(Red, Pawn), SquareOf(FileB, Rank5))
	assert.False(t, b.IsAttacked(target, Red))
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	clone := b.Copy()
	require.NoError(t, clone.DoMove(NewMove(SquareOf(FileA, Rank0), SquareOf(FileA, Rank2), Quiet)))
	assert.NotEqual(t, b.Key(), clone.Key())
	assert.Equal(t, MakePiece(Red, Rook), b.PieceAt(SquareOf(FileA, Rank0)))
	assert.Equal(t, 0, b.Ply())
	assert.Equal(t, 1, clone.Ply())
}

func TestHundredPlyRoundTrip(t *testing.T) {
	b := NewBoard()
	initialKey := b.Key()
	initialPawnKey := b.PawnKey()
	initialNonPawn := b.NonPawnKeys()
	initialMailbox := b.pieces

	redHome, redOut := SquareOf(FileA, Rank0), SquareOf(FileA, Rank2)
	blackHome, blackOut := SquareOf(FileA, Rank9), SquareOf(FileA, Rank7)

	var moves []Move
	for i := 0; i < 25; i++ {
		moves = append(moves,
			NewMove(redHome, redOut, Quiet),
			NewMove(blackHome, blackOut, Quiet),
			NewMove(redOut, redHome, Quiet),
			NewMove(blackOut, blackHome, Quiet),
		)
	}
	require.Len(t, moves, 100)

	for _, m := range moves {
		require.NoError(t, b.DoMove(m))
	}
	for range moves {
		b.UndoMove()
	}

	assert.Equal(t, initialKey, b.Key())
	assert.Equal(t, initialPawnKey, b.PawnKey())
	assert.Equal(t, initialNonPawn, b.NonPawnKeys())
	assert.Equal(t, initialMailbox, b.pieces)
	assert.Equal(t, 0, b.Ply())
}
