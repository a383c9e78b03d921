// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// Improved fills depressions using the dual-queue optimization: cells
// known to sit on a plateau being drained at a fixed elevation go through a
// FIFO pit queue instead of the heap, turning what would be an O(log n)
// heap operation into an O(1) append/pop. The frontier is only consulted
// once the pit queue runs dry.
//
// Improved mutates elevations in place and returns the number of cells
// raised.
func Improved[T Number](elevations *Grid[T]) (pitCount int64, err error) {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return 0, ErrGridTooSmall
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()
	pits := newPitQueue[T]()

	seedBorder(elevations, closed, func(x, y int, z T) {
		frontier.Push(x, y, z)
	})

	for !frontier.Empty() || !pits.empty() {
		var cx, cy int
		var cz T
		if !pits.empty() {
			r := pits.pop()
			cx, cy, cz = r.x, r.y, r.z
		} else {
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
			if nz <= cz {
				if nz < cz {
					pitCount++
					nz = cz
					elevations.Set(nx, ny, nz)
				}
				pits.push(nx, ny, nz)
				continue
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return pitCount, nil
}
