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

// PieceType is a set of constants for the seven Xiangqi piece kinds,
// plus PtNone for an empty square.
type PieceType int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PtNone   PieceType = 0
	Pawn     PieceType = 1 // Soldier, non sliding
	Knight   PieceType = 2 // Horse, blockable leg
	Bishop   PieceType = 3 // Elephant, blockable eye, confined to own half
	Rook     PieceType = 4 // Chariot, sliding
	Advisor  PieceType = 5 // Confined to the palace
	King     PieceType = 6 // General, confined to the palace
	Cannon   PieceType = 7 // Sliding with screen-jump capture
	PtLength PieceType = 8
)

var pieceTypeToString = [PtLength]string{"NOPIECE", "Pawn", "Knight", "Bishop", "Rook", "Advisor", "King", "Cannon"}

// Str returns a string representation of a piece type.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

// pieceTypeToChar follows the Xiangqi FEN letter set: - p n b r a k c.
var pieceTypeToChar = string("-pnbrakc")

// Char returns a single char (lowercase) representation of a piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// IsValid checks if pt is a valid piece type (excludes PtNone).
func (pt PieceType) IsValid() bool {
	return pt > 0 && pt < PtLength
}

// IsSliding reports whether pt slides along ranks and files with its
// attack set taken from the magic-bitboard machinery (Rook, Cannon).
// Knight and Bishop report false even though their leg/eye occupancy
// masks make their attack sets occupancy-dependent; King, Advisor and
// Pawn are static.
func (pt PieceType) IsSliding() bool {
	return pt == Rook || pt == Cannon
}
