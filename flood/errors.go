// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

import "errors"

// Errors returned by the flooding entry points. Each corresponds to one of
// the invalid-input failure kinds: a caller can distinguish them with
// errors.Is.
var (
	// ErrGridTooSmall is returned when either dimension of the input
	// elevation grid is smaller than 2.
	ErrGridTooSmall = errors.New("priorityflood: grid must be at least 2x2")

	// ErrNotFloat describes epsilon flooding requested over an integral
	// element type: nextafter has no integer analogue, so strict monotone
	// descent cannot be represented. Epsilon's Float constraint already
	// rejects such types at compile time, so Epsilon never returns it.
	ErrNotFloat = errors.New("priorityflood: epsilon flooding requires a floating-point elevation type")

	// ErrDimensionMismatch is returned when an auxiliary output grid (flow
	// directions, pit mask, watershed labels) was pre-allocated by the
	// caller with dimensions that do not match the elevation grid.
	ErrDimensionMismatch = errors.New("priorityflood: output grid dimensions do not match the elevation grid")
)

// assertClosedOnce panics if a cell is pushed onto a queue a second time.
// Every variant marks a cell closed at the moment it is first observed and
// must never observe it again; a violation is an internal invariant
// failure, not a condition callers can recover from, so it is reported by
// panicking rather than by an error return.
func assertClosedOnce(closed *Grid[bool], x, y int) {
	if closed.At(x, y) {
		panic("priorityflood: internal invariant violated: cell closed twice")
	}
	closed.Set(x, y, true)
}

// seedBorder pushes every boundary cell of elevations onto push, marking it
// closed, matching the fixed traversal order used throughout the original
// implementation: the top and bottom rows first, left to right, then the
// left and right columns excluding the corners already visited.
func seedBorder[T Number](elevations *Grid[T], closed *Grid[bool], push func(x, y int, z T)) {
	w, h := elevations.Width(), elevations.Height()
	for x := 0; x < w; x++ {
		assertClosedOnce(closed, x, 0)
		push(x, 0, elevations.At(x, 0))
		if h > 1 {
			assertClosedOnce(closed, x, h-1)
			push(x, h-1, elevations.At(x, h-1))
		}
	}
	for y := 1; y < h-1; y++ {
		assertClosedOnce(closed, 0, y)
		push(0, y, elevations.At(0, y))
		if w > 1 {
			assertClosedOnce(closed, w-1, y)
			push(w-1, y, elevations.At(w-1, y))
		}
	}
}
