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

// Move is a 16-bit packed record: bits 0-6 hold the from-square, bits
// 7-13 the to-square, bits 14-15 a MoveType flag. Seven-bit fields
// accommodate the 0..89 square range. There is no promotion, castling
// or en-passant flag: Xiangqi has none of those, and the generator
// never emits one.
type Move uint16

// MoveType distinguishes a quiet move from a capture. These are the
// only two kinds of move Xiangqi has.
type MoveType uint16

const (
	Quiet   MoveType = 0
	Capture MoveType = 1
)

const (
	moveFromMask  = 0x007F
	moveToShift   = 7
	moveToMask    = 0x007F << moveToShift
	moveTypeShift = 14
)

// MoveNone is the zero value, used as a "no move" sentinel.
const MoveNone Move = 0

// NewMove packs from, to and a MoveType into a Move.
func NewMove(from, to Square, mt MoveType) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)<<moveToShift)&moveToMask | uint16(mt)<<moveTypeShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(uint16(m) & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((uint16(m) & moveToMask) >> moveToShift)
}

// Type returns the move's MoveType flag.
func (m Move) Type() MoveType {
	return MoveType(uint16(m) >> moveTypeShift)
}

// IsCapture reports whether m is flagged as a capture.
func (m Move) IsCapture() bool {
	return m.Type() == Capture
}

// IsValid reports whether m carries two distinct, on-board squares.
func (m Move) IsValid() bool {
	return m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders m as "from-to" or "from x to" for a capture, e.g.
// "e3-e4" or "h2xe2". Returns "noMove" for MoveNone.
func (m Move) String() string {
	if m == MoveNone {
		return "noMove"
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return m.From().String() + sep + m.To().String()
}
