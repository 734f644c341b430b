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

// Package perft counts the leaf positions reachable from a Board to a
// fixed depth, the standard move-generator conformance exercise: every
// node the recursion visits re-derives from Generate/DoMove/UndoMove, so
// a wrong node count at a given depth pinpoints a move generation bug
// no single hand-written test position would catch.
package perft

import (
	"sync"
	"time"

	"github.com/frankkopp/workerpool"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/xiangqigo/internal/board"
	myLogging "github.com/frankkopp/xiangqigo/internal/logging"
	"github.com/frankkopp/xiangqigo/internal/movegen"
)

var log = myLogging.Get("perft")
var out = message.NewPrinter(language.English)

// Result accumulates the counters a perft run reports. Capture and
// check counters are informational breakdowns of Nodes, not separate
// totals; Xiangqi has no en-passant, castling or promotion move kinds
// to tally alongside them.
type Result struct {
	Nodes      uint64
	Captures   uint64
	Checks     uint64
	Checkmates uint64
	Elapsed    time.Duration
}

// Run walks every legal move to depth plies deep from the position
// described by fen and returns the aggregate Result. depth below 1 is
// clamped to 1.
func Run(fen string, depth int) (Result, error) {
	if depth < 1 {
		depth = 1
	}
	b, err := board.ParseFEN(fen)
	if err != nil {
		return Result{}, err
	}

	log.Debugf("perft depth %d from %s", depth, fen)
	start := time.Now()
	var r Result
	countMoves(b, depth, &r)
	r.Elapsed = time.Since(start)
	return r, nil
}

// countMoves is the sequential recursive counter, grounded on the
// teacher's miniMax: generate, make/test/unmake each move, recurse or
// tally a leaf.
func countMoves(b *board.Board, depth int, r *Result) {
	g := movegen.NewGenerator()
	moves := g.Generate(b, movegen.Legal)
	moves.ForEach(func(i int) {
		m := moves.At(i)
		capture := m.IsCapture()
		if err := b.DoMove(m); err != nil {
			return
		}
		defer b.UndoMove()

		if depth > 1 {
			countMoves(b, depth-1, r)
			return
		}

		r.Nodes++
		if capture {
			r.Captures++
		}
		if b.IsCheck(b.SideToMove()) {
			r.Checks++
			// A fresh Generator here, not g: g's move slice is the one
			// this ForEach callback is itself iterating over, and
			// Generate overwrites its owner's buffer in place.
			if !movegen.HasLegalMove(movegen.NewGenerator(), b) {
				r.Checkmates++
			}
		}
	})
}

// Divide runs one ply of move generation from fen and returns, for each
// root move, the leaf count of the (depth-1)-deep subtree under it -
// the standard per-move breakdown used to bisect a move generator bug
// against a reference engine's own divide output.
//
// Divide fans the root moves out across a worker pool sized to
// maxWorkers, cloning the root Board once per root move with
// Board.Copy() so each worker mutates its own copy via DoMove/UndoMove
// without touching the caller's board or any other worker's - the "one
// Board per worker thread, shared read-only attack tables" contract a
// parallel search driver would also rely on.
func Divide(fen string, depth int, maxWorkers int) (map[string]uint64, error) {
	if depth < 1 {
		depth = 1
	}
	root, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := movegen.NewGenerator()
	rootMoves := g.Generate(root, movegen.Legal).Clone()

	results := make(map[string]uint64, rootMoves.Len())
	var mu sync.Mutex
	var pending sync.WaitGroup

	pool := workerpool.New(maxWorkers)

	rootMoves.ForEach(func(i int) {
		m := rootMoves.At(i)
		clone := root.Copy()

		pending.Add(1)
		pool.Submit(func() {
			defer pending.Done()

			if err := clone.DoMove(m); err != nil {
				log.Debugf("divide: skipping %s: %v", m.String(), err)
				return
			}
			var sub Result
			if depth > 1 {
				countMoves(clone, depth-1, &sub)
			} else {
				sub.Nodes = 1
			}
			clone.UndoMove()

			mu.Lock()
			results[m.String()] = sub.Nodes
			mu.Unlock()
		})
	})

	pending.Wait()
	pool.StopWait()

	return results, nil
}

// Total sums every subtree count a Divide call returned.
func Total(divided map[string]uint64) uint64 {
	var total uint64
	for _, n := range divided {
		total += n
	}
	return total
}

// Report renders a Result the way the teacher's own StartPerft prints
// to its message.Printer, substituting Xiangqi's counters for the
// orthodox-chess ones (no en-passant, castling or promotion tallies).
func Report(fen string, depth int, r Result) string {
	var sb []byte
	print := func(format string, a ...interface{}) {
		sb = append(sb, []byte(out.Sprintf(format, a...))...)
	}
	print("Performing PERFT test for depth %d\n", depth)
	print("FEN: %s\n", fen)
	print("-----------------------------------------\n")
	nps := uint64(0)
	if r.Elapsed > 0 {
		nps = (r.Nodes * uint64(time.Second.Nanoseconds())) / uint64(r.Elapsed.Nanoseconds())
	}
	print("Time        : %s\n", r.Elapsed)
	print("NPS         : %d nps\n", nps)
	print("Nodes       : %d\n", r.Nodes)
	print("Captures    : %d\n", r.Captures)
	print("Checks      : %d\n", r.Checks)
	print("Checkmates  : %d\n", r.Checkmates)
	print("-----------------------------------------\n")
	return string(sb)
}
