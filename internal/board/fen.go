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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/xiangqigo/internal/types"
)

// StartPositionString is the position string of a fresh Xiangqi game.
const StartPositionString = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// InvalidFEN reports why a position string failed to parse,
// carrying both a human-readable reason and the offending input.
type InvalidFEN struct {
	Reason string
	Source string
}

func (e *InvalidFEN) Error() string {
	return fmt.Sprintf("invalid position string %q: %s", e.Source, e.Reason)
}

var pieceFromChar = map[byte]Piece{}

func init() {
	chars := "pnbrakc"
	for pt := Pawn; pt <= Cannon; pt++ {
		lower := chars[pt-1]
		pieceFromChar[lower] = MakePiece(Black, pt)
		pieceFromChar[lower-'a'+'A'] = MakePiece(Red, pt)
	}
}

// ParseFEN parses s into a Board, or returns an
// *InvalidFEN describing why it could not.
func ParseFEN(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, &InvalidFEN{Reason: "expected 6 space-separated fields", Source: s}
	}
	placement, sideField, _, _, halfMoveField, fullMoveField := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	ranks := strings.Split(placement, "/")
	if len(ranks) != RankLength {
		return nil, &InvalidFEN{Reason: fmt.Sprintf("expected %d slash-separated ranks, got %d", RankLength, len(ranks)), Source: s}
	}

	b := newEmptyBoard()
	kingsSeen := [ColorLength]int{}

	// Placement is written rank 9 down to rank 0.
	for i, rankStr := range ranks {
		r := Rank(RankLength - 1 - i)
		f := FileA
		lastWasDigit := false
		for idx := 0; idx < len(rankStr); idx++ {
			ch := rankStr[idx]
			if ch >= '1' && ch <= '9' {
				if lastWasDigit {
					return nil, &InvalidFEN{Reason: "adjacent digits in a rank must be merged", Source: s}
				}
				lastWasDigit = true
				run := int(ch - '0')
				f = File(int(f) + run)
				continue
			}
			lastWasDigit = false
			p, ok := pieceFromChar[ch]
			if !ok {
				return nil, &InvalidFEN{Reason: fmt.Sprintf("unrecognised piece letter %q", string(ch)), Source: s}
			}
			if !f.IsValid() {
				return nil, &InvalidFEN{Reason: fmt.Sprintf("rank %d overruns 9 files", r), Source: s}
			}
			sq := SquareOf(f, r)
			b.putPiece(p, sq)
			if p.TypeOf() == King {
				kingsSeen[p.ColorOf()]++
			}
			f++
		}
		if int(f) != FileLength {
			return nil, &InvalidFEN{Reason: fmt.Sprintf("rank %d does not sum to %d squares", r, FileLength), Source: s}
		}
	}

	if kingsSeen[Red] != 1 || kingsSeen[Black] != 1 {
		return nil, &InvalidFEN{Reason: "position must have exactly one King per color", Source: s}
	}

	switch sideField {
	case "w":
		b.sideToMove = Red
	case "b":
		b.sideToMove = Black
	default:
		return nil, &InvalidFEN{Reason: fmt.Sprintf("side to move must be 'w' or 'b', got %q", sideField), Source: s}
	}

	halfMove, err := strconv.Atoi(halfMoveField)
	if err != nil || halfMove < 0 {
		return nil, &InvalidFEN{Reason: fmt.Sprintf("half-move clock must be a non-negative integer, got %q", halfMoveField), Source: s}
	}
	b.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fullMoveField)
	if err != nil || fullMove < 0 {
		return nil, &InvalidFEN{Reason: fmt.Sprintf("full-move number must be a non-negative integer, got %q", fullMoveField), Source: s}
	}
	b.fullMoveNumber = fullMove

	b.key, b.pawnKey, b.nonPawnKeys = b.keysFromScratch()

	return b, nil
}

// String renders the Board back into a six-field position string.
func (b *Board) String() string {
	var placement strings.Builder
	for i := 0; i < RankLength; i++ {
		r := Rank(RankLength - 1 - i)
		empty := 0
		for f := FileA; f < FileNone; f++ {
			p := b.pieces[SquareOf(f, r)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				placement.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			placement.WriteString(p.Char())
		}
		if empty > 0 {
			placement.WriteString(strconv.Itoa(empty))
		}
		if i != RankLength-1 {
			placement.WriteByte('/')
		}
	}
	return fmt.Sprintf("%s %s - - %d %d", placement.String(), b.sideToMove.Str(), b.halfMoveClock, b.fullMoveNumber)
}
