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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/xiangqigo/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestRookAttacksOpenBoard(t *testing.T) {
	sq := SquareOf(FileE, Rank4)
	attack := RookAttacks(sq, BbZero)
	assert.True(t, attack.Contains(SquareOf(FileE, Rank9)))
	assert.True(t, attack.Contains(SquareOf(FileA, Rank4)))
	assert.True(t, attack.Contains(SquareOf(FileI, Rank4)))
	assert.True(t, attack.Contains(SquareOf(FileE, Rank0)))
}

func TestRookAttacksStopsAtBlocker(t *testing.T) {
	sq := SquareOf(FileE, Rank4)
	blocker := SquareOf(FileE, Rank6)
	occ := BbSingle(blocker)
	attack := RookAttacks(sq, occ)
	assert.True(t, attack.Contains(SquareOf(FileE, Rank5)))
	assert.True(t, attack.Contains(blocker))
	assert.False(t, attack.Contains(SquareOf(FileE, Rank7)))
}

func TestCannonRequiresScreenToCapture(t *testing.T) {
	sq := SquareOf(FileE, Rank4)
	target := SquareOf(FileE, Rank8)
	// No screen: the far piece is not attacked, but the empty squares
	// up to it are quiet destinations.
	occ := BbSingle(target)
	attack := CannonAttacks(sq, occ)
	assert.False(t, attack.Contains(target))
	assert.True(t, attack.Contains(SquareOf(FileE, Rank7)))

	// With exactly one screen in between, the far piece becomes capturable.
	screen := SquareOf(FileE, Rank6)
	occ = occ.WithBitSet(screen)
	attack = CannonAttacks(sq, occ)
	assert.True(t, attack.Contains(target))
	assert.False(t, attack.Contains(screen))
	assert.True(t, attack.Contains(SquareOf(FileE, Rank5)))
	assert.False(t, attack.Contains(SquareOf(FileE, Rank7)))
}

func TestHorseLegBlocksJump(t *testing.T) {
	sq := SquareOf(FileE, Rank4)
	open := HorseAttacks(sq, BbZero)
	assert.True(t, open.Contains(SquareOf(FileF, Rank6)))
	assert.True(t, open.Contains(SquareOf(FileD, Rank6)))

	// Occupying the north leg blocks both north-gated targets.
	leg := SquareOf(FileE, Rank5)
	blocked := HorseAttacks(sq, BbSingle(leg))
	assert.False(t, blocked.Contains(SquareOf(FileF, Rank6)))
	assert.False(t, blocked.Contains(SquareOf(FileD, Rank6)))
	// Other legs remain open.
	assert.True(t, blocked.Contains(SquareOf(FileG, Rank5)))
}

func TestElephantEyeBlocksAndRiverConfines(t *testing.T) {
	sq := SquareOf(FileC, Rank2)
	open := ElephantAttacks(sq, BbZero)
	assert.True(t, open.Contains(SquareOf(FileE, Rank4)))
	assert.True(t, open.Contains(SquareOf(FileA, Rank4)))

	eye := SquareOf(FileD, Rank3)
	blocked := ElephantAttacks(sq, BbSingle(eye))
	assert.False(t, blocked.Contains(SquareOf(FileE, Rank4)))

	riverSq := SquareOf(FileC, Rank4)
	riverAttacks := ElephantAttacks(riverSq, BbZero)
	for s := Square(0); s < SqNone; s++ {
		if riverAttacks.Contains(s) {
			assert.True(t, s.RankOf().IsRedSide())
		}
	}
}

func TestAdvisorConfinedToPalace(t *testing.T) {
	sq := SquareOf(FileE, Rank1)
	attack := AdvisorAttacks(sq)
	for s := Square(0); s < SqNone; s++ {
		if attack.Contains(s) {
			assert.True(t, s.InPalace(Red))
		}
	}
	assert.True(t, attack.Contains(SquareOf(FileD, Rank0)))
	assert.True(t, attack.Contains(SquareOf(FileF, Rank2)))
}

func TestGeneralConfinedToPalace(t *testing.T) {
	sq := SquareOf(FileE, Rank1)
	attack := GeneralAttacks(sq)
	for s := Square(0); s < SqNone; s++ {
		if attack.Contains(s) {
			assert.True(t, s.InPalace(Red))
		}
	}
	assert.True(t, attack.Contains(SquareOf(FileE, Rank0)))
	assert.True(t, attack.Contains(SquareOf(FileE, Rank2)))
	assert.False(t, attack.Contains(SquareOf(FileD, Rank0)))
}

func TestPawnForwardAndPostRiverSideways(t *testing.T) {
	beforeRiver := SquareOf(FileA, Rank2)
	attack := PawnAttacks(Red, beforeRiver)
	assert.Equal(t, 1, attack.PopCount())
	assert.True(t, attack.Contains(SquareOf(FileA, Rank3)))

	afterRiver := SquareOf(FileE, Rank6)
	attack = PawnAttacks(Red, afterRiver)
	assert.True(t, attack.Contains(SquareOf(FileE, Rank7)))
	assert.True(t, attack.Contains(SquareOf(FileD, Rank6)))
	assert.True(t, attack.Contains(SquareOf(FileF, Rank6)))
	assert.Equal(t, 3, attack.PopCount())

	blackBeforeRiver := SquareOf(FileA, Rank7)
	attack = PawnAttacks(Black, blackBeforeRiver)
	assert.Equal(t, 1, attack.PopCount())
	assert.True(t, attack.Contains(SquareOf(FileA, Rank6)))
}
