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
	"sync"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/xiangqigo/internal/logging"
	. "github.com/frankkopp/xiangqigo/internal/types"
)

var log *logging.Logger
var once sync.Once

// Init builds every attack table exactly once. Safe to call from multiple
// goroutines; only the first call does the work, every call blocks until
// that work is done, and the tables are read-only from then on.
func Init() {
	once.Do(func() {
		log = myLogging.Get("attacks")
		log.Debug("initializing attack tables")

		initSlidingMagics(&rookMagics, rookMask, rookAttack)
		initSlidingMagics(&cannonRankMagics, cannonRankMask, cannonRankAttack)
		initSlidingMagics(&cannonFileMagics, cannonFileMask, cannonFileAttack)
		initHorseAttacks()
		initElephantAttacks()
		initAdvisorAttacks()
		initGeneralAttacks()
		initPawnAttacks()

		log.Debug("attack tables ready")
	})
}

// occupancyIndex builds the 4-bit subset index a Horse/Elephant table is
// keyed by, from the real board occupancy occ and the square's four leg
// or eye squares (SqNone entries, for squares that would fall off the
// board, are simply treated as always-empty - consistent with how the
// tables were built, since an invalid leg/eye never gated a target).
func occupancyIndex(squares [4]Square, occ Bitboard) int {
	idx := 0
	for i, s := range squares {
		if s.IsValid() && occ.Contains(s) {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

// RookAttacks returns the Chariot's attack set from sq given the full
// board occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookMagics[sq].attacksFor(occ)
}

// CannonAttacks returns the Cannon's attack set from sq given the full
// board occupancy occ, combining the independent rank and file axes.
func CannonAttacks(sq Square, occ Bitboard) Bitboard {
	return cannonRankMagics[sq].attacksFor(occ).Union(cannonFileMagics[sq].attacksFor(occ))
}

// HorseAttacks returns the Horse's attack set from sq given the full
// board occupancy occ.
func HorseAttacks(sq Square, occ Bitboard) Bitboard {
	return horseAttacks[sq][occupancyIndex(horseLegSquares[sq], occ)]
}

// ElephantAttacks returns the Elephant's attack set from sq given the
// full board occupancy occ.
func ElephantAttacks(sq Square, occ Bitboard) Bitboard {
	return elephantAttacks[sq][occupancyIndex(elephantEyeSquares[sq], occ)]
}

// AdvisorAttacks returns the Advisor's (static, palace-confined) attack
// set from sq.
func AdvisorAttacks(sq Square) Bitboard {
	return advisorAttacks[sq]
}

// GeneralAttacks returns the General's (static, palace-confined) attack
// set from sq.
func GeneralAttacks(sq Square) Bitboard {
	return generalAttacks[sq]
}

// PawnAttacks returns the Pawn's (static) attack set from sq for color c.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// AttacksFrom returns the attack set of a piece of type pt standing on sq,
// given the full board occupancy occ. c is only consulted for Pawn, whose
// attack set depends on which side of the river it moves toward; every
// other piece type's geometry is symmetric in color.
func AttacksFrom(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Rook:
		return RookAttacks(sq, occ)
	case Cannon:
		return CannonAttacks(sq, occ)
	case Knight:
		return HorseAttacks(sq, occ)
	case Bishop:
		return ElephantAttacks(sq, occ)
	case Advisor:
		return AdvisorAttacks(sq)
	case King:
		return GeneralAttacks(sq)
	case Pawn:
		return PawnAttacks(c, sq)
	default:
		return BbZero
	}
}
