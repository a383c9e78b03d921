// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// Original fills depressions using a single priority frontier and no pit
// queue: every cell, pit or otherwise, is drained through the heap. It is
// the baseline against which Improved's dual-queue optimization is
// measured, and is kept for callers who want the simplest possible control
// flow over raw throughput.
//
// Original mutates elevations in place and returns the number of cells
// that were raised to eliminate a depression.
func Original[T Number](elevations *Grid[T]) (pitCount int64, err error) {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return 0, ErrGridTooSmall
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()

	seedBorder(elevations, closed, func(x, y int, z T) {
		frontier.Push(x, y, z)
	})

	for !frontier.Empty() {
		cx, cy, cz := frontier.Pop()
		for _, dir := range visitOrder {
			nx, ny := neighbor(cx, cy, dir)
			if !elevations.InGrid(nx, ny) || closed.At(nx, ny) {
				continue
			}
			assertClosedOnce(closed, nx, ny)
			nz := elevations.At(nx, ny)
			if nz == elevations.NoData() {
				frontier.Push(nx, ny, nz)
				continue
			}
			if nz < cz {
				pitCount++
				nz = cz
				elevations.Set(nx, ny, nz)
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return pitCount, nil
}
