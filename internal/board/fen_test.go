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

func init() {
	attacks.Init()
}

func TestParseFENStartPosition(t *testing.T) {
	b, err := ParseFEN(StartPositionString)
	require.NoError(t, err)
	assert.Equal(t, Red, b.SideToMove())
	assert.Equal(t, MakePiece(Red, King), b.PieceAt(SquareOf(FileE, Rank0)))
	assert.Equal(t, MakePiece(Black, King), b.PieceAt(SquareOf(FileE, Rank9)))
	assert.Equal(t, SquareOf(FileE, Rank0), b.GeneralSquare(Red))
	assert.Equal(t, SquareOf(FileE, Rank9), b.GeneralSquare(Black))
	assert.Equal(t, 10, b.PiecesBb(Red, Pawn).PopCount()+b.PiecesBb(Black, Pawn).PopCount())
	assert.Equal(t, 2, b.PiecesBb(Red, Cannon).PopCount())
}

func TestParseFENRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartPositionString)
	require.NoError(t, err)
	assert.Equal(t, StartPositionString, b.String())
}

func TestParseFENRejectsWrongSlashCount(t *testing.T) {
	_, err := ParseFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9 w - - 0 1")
	require.Error(t, err)
	var invalid *InvalidFEN
	assert.ErrorAs(t, err, &invalid)
}

func TestParseFENRejectsWrongKingCount(t *testing.T) {
	_, err := ParseFEN("rnbaaabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	require.Error(t, err)
}

func TestParseFENRejectsBadSideField(t *testing.T) {
	_, err := ParseFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1")
	require.Error(t, err)
}

func TestParseFENRejectsAdjacentDigits(t *testing.T) {
	_, err := ParseFEN("rnbakabnr/45/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	require.Error(t, err)
}

func TestNewBoardMatchesParseFEN(t *testing.T) {
	a := NewBoard()
	b, err := ParseFEN(StartPositionString)
	require.NoError(t, err)
	assert.Equal(t, b.Key(), a.Key())
}
