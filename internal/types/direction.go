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

// Direction is a one-step offset on the square index, used to walk
// orthogonal rays for the Rook and Cannon. Diagonal offsets (Elephant)
// and the Horse's (2,1) jumps are expressed directly in file/rank terms
// since they cannot be expressed as a fixed square delta without also
// carrying a file-wrap correction.
type Direction int

// The four orthogonal directions. North increases the rank index.
const (
	North Direction = Direction(FileLength)
	South Direction = -Direction(FileLength)
	East  Direction = 1
	West  Direction = -1
)

// RookDirections are the four directions a Chariot or Cannon slides in.
var RookDirections = [4]Direction{North, East, South, West}

// Orientation names a ray direction for precomputed ray tables.
type Orientation int

//noinspection GoUnusedConst
const (
	N Orientation = iota
	E Orientation = iota
	S Orientation = iota
	W Orientation = iota
)
