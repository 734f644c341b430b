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

package attacks

import (
	. "github.com/frankkopp/xiangqigo/internal/types"
)

// legOffset is a (fileDelta, rankDelta) offset, resolved relative to the
// source square at init time. horseLegs and horseTargets pair up a
// Horse's four leg offsets with the two target squares each leg gates.
type legOffset struct {
	fileDelta, rankDelta int
}

var horseLegs = [4]legOffset{
	{0, 1},  // north leg
	{1, 0},  // east leg
	{0, -1}, // south leg
	{-1, 0}, // west leg
}

// horseTargets[leg] holds the two (2,1)-shaped jumps gated by that leg.
var horseTargets = [4][2]legOffset{
	{{-1, 2}, {1, 2}},   // gated by north leg
	{{2, 1}, {2, -1}},   // gated by east leg
	{{-1, -2}, {1, -2}}, // gated by south leg
	{{-2, 1}, {-2, -1}}, // gated by west leg
}

// horseLegMask[sq] is the bitboard of sq's (up to four) leg squares, in a
// fixed bit order matching horseLegs so a leg-occupancy subset can be
// turned back into a bitmask during table construction.
var horseLegMask [SqLength]Bitboard
var horseLegSquares [SqLength][4]Square

// horseAttacks[sq][legOccupancy] is indexed directly by a 4-bit mask of
// which of sq's leg squares are occupied - no magic multiplier needed,
// since 16 subsets fit a plain array trivially (a PEXT-style direct
// lookup, the fallback spec's attack-table section sanctions when a
// multiplicative search is unwarranted overhead).
var horseAttacks [SqLength][16]Bitboard

// elephantEyeMask[sq] / elephantEyeSquares mirror the Horse tables for the
// Elephant's four diagonal eye squares.
var elephantEyeMask [SqLength]Bitboard
var elephantEyeSquares [SqLength][4]Square
var elephantAttacks [SqLength][16]Bitboard

var advisorAttacks [SqLength]Bitboard
var generalAttacks [SqLength]Bitboard
var pawnAttacks [ColorLength][SqLength]Bitboard

func offsetSquare(sq Square, fileDelta, rankDelta int) Square {
	f := int(sq.FileOf()) + fileDelta
	r := int(sq.RankOf()) + rankDelta
	if f < 0 || f >= FileLength || r < 0 || r >= RankLength {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

func initHorseAttacks() {
	for sq := Square(0); sq < SqNone; sq++ {
		var legSquares [4]Square
		legMask := BbZero
		for i, leg := range horseLegs {
			legSquares[i] = offsetSquare(sq, leg.fileDelta, leg.rankDelta)
			if legSquares[i].IsValid() {
				legMask = legMask.WithBitSet(legSquares[i])
			}
		}
		horseLegSquares[sq] = legSquares
		horseLegMask[sq] = legMask

		for occSubset := 0; occSubset < 16; occSubset++ {
			attack := BbZero
			for i, legSq := range legSquares {
				if !legSq.IsValid() {
					continue
				}
				legOccupied := occSubset&(1<<uint(i)) != 0
				if legOccupied {
					continue
				}
				for _, t := range horseTargets[i] {
					target := offsetSquare(sq, t.fileDelta, t.rankDelta)
					if target.IsValid() {
						attack = attack.WithBitSet(target)
					}
				}
			}
			horseAttacks[sq][occSubset] = attack
		}
	}
}

// elephantEyes lists the four diagonal eye directions. Each gates the
// (2,2) target twice as far in the same direction; initElephantAttacks
// also requires that target to lie on the elephant's own side of the
// river.
var elephantEyes = [4]legOffset{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initElephantAttacks() {
	for sq := Square(0); sq < SqNone; sq++ {
		// An Elephant never crosses the river, so the square it stands on
		// already fixes which side it belongs to.
		ownColor := Black
		if sq.RankOf().IsRedSide() {
			ownColor = Red
		}

		var eyeSquares [4]Square
		eyeMask := BbZero
		for i, eye := range elephantEyes {
			eyeSquares[i] = offsetSquare(sq, eye.fileDelta, eye.rankDelta)
			if eyeSquares[i].IsValid() {
				eyeMask = eyeMask.WithBitSet(eyeSquares[i])
			}
		}
		elephantEyeSquares[sq] = eyeSquares
		elephantEyeMask[sq] = eyeMask

		for occSubset := 0; occSubset < 16; occSubset++ {
			attack := BbZero
			for i, eyeSq := range eyeSquares {
				if !eyeSq.IsValid() {
					continue
				}
				eyeOccupied := occSubset&(1<<uint(i)) != 0
				if eyeOccupied {
					continue
				}
				target := offsetSquare(sq, 2*elephantEyes[i].fileDelta, 2*elephantEyes[i].rankDelta)
				if !target.IsValid() {
					continue
				}
				if target.OwnSide(ownColor) {
					attack = attack.WithBitSet(target)
				}
			}
			elephantAttacks[sq][occSubset] = attack
		}
	}
}

func initAdvisorAttacks() {
	diag := [4]legOffset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for sq := Square(0); sq < SqNone; sq++ {
		attack := BbZero
		for _, c := range [2]Color{Red, Black} {
			if !sq.InPalace(c) {
				continue
			}
			for _, d := range diag {
				target := offsetSquare(sq, d.fileDelta, d.rankDelta)
				if target.IsValid() && target.InPalace(c) {
					attack = attack.WithBitSet(target)
				}
			}
		}
		advisorAttacks[sq] = attack
	}
}

func initGeneralAttacks() {
	ortho := [4]legOffset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	for sq := Square(0); sq < SqNone; sq++ {
		attack := BbZero
		for _, c := range [2]Color{Red, Black} {
			if !sq.InPalace(c) {
				continue
			}
			for _, d := range ortho {
				target := offsetSquare(sq, d.fileDelta, d.rankDelta)
				if target.IsValid() && target.InPalace(c) {
					attack = attack.WithBitSet(target)
				}
			}
		}
		generalAttacks[sq] = attack
	}
}

func initPawnAttacks() {
	for sq := Square(0); sq < SqNone; sq++ {
		for _, c := range [2]Color{Red, Black} {
			attack := BbZero
			forward := offsetSquare(sq, 0, c.ForwardRankStep())
			if forward.IsValid() {
				attack = attack.WithBitSet(forward)
			}
			if sq.OwnSide(c.Flip()) {
				// crossed the river: sideways moves open up
				for _, fd := range [2]int{1, -1} {
					side := offsetSquare(sq, fd, 0)
					if side.IsValid() {
						attack = attack.WithBitSet(side)
					}
				}
			}
			pawnAttacks[c][sq] = attack
		}
	}
}
