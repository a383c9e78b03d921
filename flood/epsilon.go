// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

import "math"

// nextUp returns the smallest representable value of T strictly greater
// than z, dispatching to the correct IEEE-754 nextafter width at runtime.
// Go generics monomorphize over the type parameter at compile time but
// offer no generic nextafter; the any() type switch here is the
// idiomatic stand-in for the template specialization the original
// implementation gets from the C++ compiler.
func nextUp[T Float](z T) T {
	switch v := any(z).(type) {
	case float32:
		return T(math.Nextafter32(v, float32(math.Inf(1))))
	case float64:
		return T(math.Nextafter(v, math.Inf(1)))
	}
	panic("priorityflood: unreachable nextUp type")
}

// EpsilonResult reports the diagnostics the Epsilon variant accumulates in
// addition to filling the grid.
type EpsilonResult struct {
	// PitCount is the number of cells set to the successor of their
	// donor's elevation; a cell that already held exactly that value is
	// counted as well.
	PitCount int64
	// FalsePits counts cells whose epsilon increment was not actually
	// needed to maintain strict descent, a diagnostic signal only; it does
	// not change the output grid.
	FalsePits int64
}

// Epsilon fills depressions so that every interior cell has a strictly
// lower elevation than its upstream neighbor, breaking the ties that
// Improved leaves as flat plateaus by nudging each drained cell up by the
// smallest representable increment (nextafter) above the previous one.
// Because it relies on nextafter, Epsilon only accepts floating-point
// element types; the Float constraint rejects any other T at compile time.
func Epsilon[T Float](elevations *Grid[T]) (EpsilonResult, error) {
	var result EpsilonResult
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return result, ErrGridTooSmall
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()
	pits := newPitQueue[T]()
	pitTop := elevations.NoData()
	pitTopSet := false

	seedBorder(elevations, closed, func(x, y int, z T) {
		frontier.Push(x, y, z)
	})

	for !frontier.Empty() || !pits.empty() {
		var cx, cy int
		var cz T
		switch {
		case !pits.empty() && !frontier.Empty() && func() bool {
			_, _, fz := frontier.Peek()
			return fz == pits.front().z
		}():
			cx, cy, cz = frontier.Pop()
			pitTopSet = false
		case !pits.empty():
			r := pits.pop()
			cx, cy, cz = r.x, r.y, r.z
			if !pitTopSet {
				pitTop = cz
				pitTopSet = true
			}
		default:
			cx, cy, cz = frontier.Pop()
		}

		for _, dir := range visitOrder {
			nx, ny := neighbor(cx, cy, dir)
			if !elevations.InGrid(nx, ny) || closed.At(nx, ny) {
				continue
			}
			assertClosedOnce(closed, nx, ny)
			nz := elevations.At(nx, ny)
			if nz == elevations.NoData() {
				pits.push(nx, ny, nz)
				continue
			}

			bumped := nextUp(cz)
			if nz <= bumped {
				if pitTopSet && pitTop < nz && bumped >= nz {
					result.FalsePits++
				}
				result.PitCount++
				nz = bumped
				elevations.Set(nx, ny, nz)
				pits.push(nx, ny, nz)
				continue
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return result, nil
}
