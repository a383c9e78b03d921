// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// FlowDirs computes a D8 flow direction for every cell without modifying
// the elevation grid: each cell's direction points back toward whichever
// neighbor first observed it while draining the priority frontier, which
// is always the lowest cell remaining on the frontier at the time of
// discovery.
// Boundary cells point outward via edgeDirection; no_data cells are
// assigned NoFlow.
//
// directions must already be allocated with the same dimensions as
// elevations; its element type is fixed at int8 since eight directions
// plus NoFlow comfortably fit in one byte and no caller needs wider flow
// codes.
func FlowDirs[T Number](elevations *Grid[T], directions *Grid[int8]) error {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return ErrGridTooSmall
	}
	if directions.Width() != w || directions.Height() != h {
		return ErrDimensionMismatch
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()

	for x := 0; x < w; x++ {
		for _, y := range []int{0, h - 1} {
			if elevations.At(x, y) == elevations.NoData() {
				directions.Set(x, y, NoFlow)
			} else {
				directions.Set(x, y, edgeDirection(x, y, w, h))
			}
		}
	}
	for y := 1; y < h-1; y++ {
		for _, x := range []int{0, w - 1} {
			if elevations.At(x, y) == elevations.NoData() {
				directions.Set(x, y, NoFlow)
			} else {
				directions.Set(x, y, edgeDirection(x, y, w, h))
			}
		}
	}
	seedBorder(elevations, closed, func(x, y int, z T) {
		frontier.Push(x, y, z)
	})

	for !frontier.Empty() {
		cx, cy, cz := frontier.Pop()
		_ = cz
		for _, dir := range visitOrder {
			nx, ny := neighbor(cx, cy, dir)
			if !elevations.InGrid(nx, ny) || closed.At(nx, ny) {
				continue
			}
			assertClosedOnce(closed, nx, ny)
			nz := elevations.At(nx, ny)
			if nz == elevations.NoData() {
				directions.Set(nx, ny, NoFlow)
			} else {
				directions.Set(nx, ny, inverseDirection[dir])
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return nil
}
