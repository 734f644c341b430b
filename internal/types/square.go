/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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
	"github.com/frankkopp/xiangqigo/internal/assert"
)

// Square represents exactly one square on a 10x9 Xiangqi board, packed
// as rank*9+file (resolves the broken rank*8+file packing of this
// package's 64-square ancestor: that scheme only reached 80 of the 90
// squares and aliased file 0 of rank r+1 with file 8 of rank r).
type Square uint8

// SqLength is the number of real squares on the board.
const SqLength = FileLength * RankLength // 90

// SqNone is the sentinel for "no square" / "off board".
const SqNone Square = Square(SqLength)

// IsValid checks if sq represents a valid on-board square.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(int(sq) % FileLength)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(int(sq) / FileLength)
}

// SquareOf returns a square from file and rank. Returns SqNone for
// invalid files or ranks.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*FileLength + int(f))
}

// MakeSquare parses a square string (e.g. "e3") into a Square, or
// returns SqNone if the string does not denote a valid square.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string is not 2 characters long")
	}
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '0')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String returns the file letter followed by the rank digit (e.g. e3).
// Returns "-" for an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step in direction d, or SqNone if that
// step would leave the board (including wrapping around a file edge).
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		to := Square(int(sq) + int(d))
		if to.IsValid() {
			return to
		}
		return SqNone
	case East:
		if sq.FileOf() >= FileI {
			return SqNone
		}
		return Square(int(sq) + int(d))
	case West:
		if sq.FileOf() <= FileA {
			return SqNone
		}
		return Square(int(sq) + int(d))
	default:
		return SqNone
	}
}

// InPalace reports whether sq lies in the 3x3 palace of color c
// (files d-f, ranks 0-2 for Red, 7-9 for Black).
func (sq Square) InPalace(c Color) bool {
	f := sq.FileOf()
	if f < FileD || f > FileF {
		return false
	}
	r := sq.RankOf()
	if c == Red {
		return r <= Rank2
	}
	return r >= Rank7
}

// OwnSide reports whether sq lies on color c's side of the river
// (ranks 0-4 for Red, 5-9 for Black) - the Elephant may never cross it.
func (sq Square) OwnSide(c Color) bool {
	if c == Red {
		return sq.RankOf().IsRedSide()
	}
	return sq.RankOf().IsBlackSide()
}
