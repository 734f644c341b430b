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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOfPacking(t *testing.T) {
	// rank*9+file packing must address all 90 squares uniquely.
	assert.EqualValues(t, 0, SquareOf(FileA, Rank0))
	assert.EqualValues(t, 8, SquareOf(FileI, Rank0))
	assert.EqualValues(t, 9, SquareOf(FileA, Rank1))
	assert.EqualValues(t, 89, SquareOf(FileI, Rank9))
	assert.EqualValues(t, SqNone, SquareOf(FileNone, Rank0))
}

func TestSquareRoundTrip(t *testing.T) {
	for r := Rank0; r.IsValid(); r++ {
		for f := FileA; f.IsValid(); f++ {
			sq := SquareOf(f, r)
			assert.True(t, sq.IsValid())
			assert.Equal(t, f, sq.FileOf())
			assert.Equal(t, r, sq.RankOf())
		}
	}
}

func TestMakeSquareString(t *testing.T) {
	sq := MakeSquare("e3")
	assert.Equal(t, SquareOf(FileE, Rank3), sq)
	assert.Equal(t, "e3", sq.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	sq := SquareOf(FileA, Rank0)
	assert.Equal(t, SqNone, sq.To(West))
	assert.Equal(t, SqNone, sq.To(South))
	assert.Equal(t, SquareOf(FileB, Rank0), sq.To(East))
	assert.Equal(t, SquareOf(FileA, Rank1), sq.To(North))

	edge := SquareOf(FileI, Rank9)
	assert.Equal(t, SqNone, edge.To(East))
	assert.Equal(t, SqNone, edge.To(North))
}

func TestInPalace(t *testing.T) {
	assert.True(t, SquareOf(FileE, Rank1).InPalace(Red))
	assert.False(t, SquareOf(FileA, Rank1).InPalace(Red))
	assert.False(t, SquareOf(FileE, Rank3).InPalace(Red))
	assert.True(t, SquareOf(FileE, Rank8).InPalace(Black))
	assert.False(t, SquareOf(FileE, Rank6).InPalace(Black))
}

func TestOwnSide(t *testing.T) {
	assert.True(t, SquareOf(FileA, Rank4).OwnSide(Red))
	assert.False(t, SquareOf(FileA, Rank5).OwnSide(Red))
	assert.True(t, SquareOf(FileA, Rank5).OwnSide(Black))
	assert.False(t, SquareOf(FileA, Rank4).OwnSide(Black))
}
