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

// Rank represents a board rank. A Xiangqi board has 10 of them, 0-9.
// Rank0 is Red's back rank, Rank9 is Black's back rank.
type Rank uint8

//noinspection GoUnusedConst
const (
	Rank0    Rank = iota
	Rank1    Rank = iota
	Rank2    Rank = iota
	Rank3    Rank = iota
	Rank4    Rank = iota
	Rank5    Rank = iota
	Rank6    Rank = iota
	Rank7    Rank = iota
	Rank8    Rank = iota
	Rank9    Rank = iota
	RankNone Rank = iota
)

// RankLength is the number of ranks on a Xiangqi board.
const RankLength = int(RankNone)

// IsValid checks if r represents a valid rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels string = "0123456789"

// String returns a string digit for the rank (e.g. 0 - 9).
// If r is not a valid rank returns "-".
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}

// IsRedSide reports whether r lies on Red's side of the river (ranks 0..4).
func (r Rank) IsRedSide() bool {
	return r <= Rank4
}

// IsBlackSide reports whether r lies on Black's side of the river (ranks 5..9).
func (r Rank) IsBlackSide() bool {
	return r >= Rank5
}
