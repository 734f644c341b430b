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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares on the 90-square Xiangqi board, held as
// two 64-bit lanes: Lo covers squares 0..63, Hi covers squares 64..89.
// Invariant: the top 38 bits of Hi (bits 26..63) are always zero.
type Bitboard struct {
	Lo uint64
	Hi uint64
}

// hiMask clears the 38 bits of Hi that have no corresponding square.
const hiMask uint64 = (uint64(1) << uint(SqLength-64)) - 1

// BbZero is the empty bitboard.
var BbZero = Bitboard{}

// BbSingle returns a bitboard with only sq set.
func BbSingle(sq Square) Bitboard {
	return sqBb[sq]
}

// IsEmpty reports whether b has no squares set.
func (b Bitboard) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Union returns the bitwise OR of b and other.
func (b Bitboard) Union(other Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo | other.Lo, Hi: b.Hi | other.Hi}
}

// Intersection returns the bitwise AND of b and other.
func (b Bitboard) Intersection(other Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo & other.Lo, Hi: b.Hi & other.Hi}
}

// Xor returns the bitwise XOR of b and other.
func (b Bitboard) Xor(other Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo ^ other.Lo, Hi: b.Hi ^ other.Hi}
}

// Complement returns every square not in b, restricted to the 90
// real squares.
func (b Bitboard) Complement() Bitboard {
	return Bitboard{Lo: ^b.Lo, Hi: ^b.Hi & hiMask}
}

// AndNot returns the squares in b that are not in other.
func (b Bitboard) AndNot(other Bitboard) Bitboard {
	return Bitboard{Lo: b.Lo &^ other.Lo, Hi: b.Hi &^ other.Hi}
}

// Contains reports whether sq is set in b.
func (b Bitboard) Contains(sq Square) bool {
	return !b.Intersection(sqBb[sq]).IsEmpty()
}

// Has is an alias of Contains kept for symmetry with the teacher's
// single-lane Bitboard API.
func (b Bitboard) Has(sq Square) bool {
	return b.Contains(sq)
}

// WithBitSet returns b with sq added.
func (b Bitboard) WithBitSet(sq Square) Bitboard {
	return b.Union(sqBb[sq])
}

// WithBitCleared returns b with sq removed.
func (b Bitboard) WithBitCleared(sq Square) Bitboard {
	return b.AndNot(sqBb[sq])
}

// PushSquare sets sq in *b and returns the new value.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b = b.WithBitSet(sq)
	return *b
}

// PopSquare clears sq in *b and returns the new value.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b = b.WithBitCleared(sq)
	return *b
}

// PopCount returns the number of squares set in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// Lsb returns the lowest-indexed set square in b, scanning the Lo lane
// first and falling through to Hi offset by 64. Undefined (returns
// SqNone) if b is empty - callers must guard with IsEmpty.
func (b Bitboard) Lsb() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return SqNone
}

// PopLsb returns the Lsb square of *b and removes it.
func (b *Bitboard) PopLsb() Square {
	if b.IsEmpty() {
		return SqNone
	}
	sq := b.Lsb()
	b.PopSquare(sq)
	return sq
}

// NextSetFrom returns the smallest set square >= start, or SqNone if
// none exists.
func (b Bitboard) NextSetFrom(start Square) Square {
	if start >= SqNone {
		return SqNone
	}
	if start < 64 {
		masked := b.Lo >> uint(start)
		if masked != 0 {
			return start + Square(bits.TrailingZeros64(masked))
		}
		if b.Hi != 0 {
			return 64 + Square(bits.TrailingZeros64(b.Hi))
		}
		return SqNone
	}
	shift := uint(start) - 64
	masked := b.Hi >> shift
	if masked != 0 {
		return start + Square(bits.TrailingZeros64(masked))
	}
	return SqNone
}

// Sub performs a 128-bit subtraction of mask from b treating (Hi,Lo)
// as a single 90-bit big-endian pair. It is the borrow-propagating
// primitive the Carry-Rippler subset enumeration
// (b = (b - mask) & mask) needs when a mask straddles both lanes.
func (b Bitboard) Sub(mask Bitboard) Bitboard {
	lo := b.Lo - mask.Lo
	borrow := uint64(0)
	if b.Lo < mask.Lo {
		borrow = 1
	}
	hi := b.Hi - mask.Hi - borrow
	return Bitboard{Lo: lo, Hi: hi}
}

// String returns the 90 bits from square 0 to 89, one character each.
func (b Bitboard) String() string {
	var os strings.Builder
	for sq := Square(0); sq < SqNone; sq++ {
		if b.Contains(sq) {
			os.WriteByte('1')
		} else {
			os.WriteByte('0')
		}
	}
	return os.String()
}

// StringBoard renders b as a 10x9 board, rank 9 (Black's back rank)
// on top, matching the way a Xiangqi position string is usually read.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	for r := Rank9; ; r-- {
		for f := FileA; f < FileNone; f++ {
			if b.Contains(SquareOf(f, r)) {
				os.WriteString("X ")
			} else {
				os.WriteString(". ")
			}
		}
		os.WriteString(fmt.Sprintf("%d\n", r))
		if r == Rank0 {
			break
		}
	}
	return os.String()
}

// Between returns the squares strictly between sq1 and sq2 when they
// share a file or a rank (the only geometry the core needs: the
// flying-general check and cannon screen/interposition reasoning both
// operate along a single file or rank). Returns BbZero for squares
// that share neither, or that are adjacent/equal.
func Between(sq1, sq2 Square) Bitboard {
	if sq1 == sq2 {
		return BbZero
	}
	result := BbZero
	if sq1.FileOf() == sq2.FileOf() {
		lo, hi := sq1, sq2
		if lo > hi {
			lo, hi = hi, lo
		}
		for s := lo.To(North); s.IsValid() && s != hi; s = s.To(North) {
			result = result.WithBitSet(s)
		}
		return result
	}
	if sq1.RankOf() == sq2.RankOf() {
		lo, hi := sq1, sq2
		if lo > hi {
			lo, hi = hi, lo
		}
		for s := lo.To(East); s.IsValid() && s != hi; s = s.To(East) {
			result = result.WithBitSet(s)
		}
		return result
	}
	return BbZero
}

// sqBb is the precomputed square -> single-bit bitboard table.
var sqBb [SqLength]Bitboard

func init() {
	for sq := Square(0); sq < SqNone; sq++ {
		if sq < 64 {
			sqBb[sq] = Bitboard{Lo: uint64(1) << uint(sq)}
		} else {
			sqBb[sq] = Bitboard{Hi: uint64(1) << uint(sq-64)}
		}
	}
}
