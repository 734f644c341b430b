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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/xiangqigo/internal/attacks"
	"github.com/frankkopp/xiangqigo/internal/board"
	"github.com/frankkopp/xiangqigo/internal/movegen"
)

func init() {
	attacks.Init()
}

func TestRunDepthOneCountsRootMoves(t *testing.T) {
	b, err := board.ParseFEN(board.StartPositionString)
	require.NoError(t, err)

	want := movegen.NewGenerator().Generate(b, movegen.Legal).Len()

	r, err := Run(board.StartPositionString, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(want), r.Nodes)
}

func TestRunDepthTwoExceedsDepthOne(t *testing.T) {
	r1, err := Run(board.StartPositionString, 1)
	require.NoError(t, err)

	r2, err := Run(board.StartPositionString, 2)
	require.NoError(t, err)

	assert.True(t, r2.Nodes > r1.Nodes, "depth 2 must see strictly more leaves than depth 1")
}

func TestDivideSumsToRunTotal(t *testing.T) {
	want, err := Run(board.StartPositionString, 2)
	require.NoError(t, err)

	divided, err := Divide(board.StartPositionString, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, want.Nodes, Total(divided))
}

func TestDivideRejectsInvalidFEN(t *testing.T) {
	_, err := Divide("not a position", 1, 2)
	require.Error(t, err)
}
