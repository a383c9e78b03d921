// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// WatershedNoLabel is the sentinel assigned to no_data cells and, until
// visited, to every other cell in the labels grid.
const WatershedNoLabel int32 = -1

// Watersheds partitions the grid into drainage basins: every boundary cell
// starts a new basin, and a basin spreads inward to any interior local
// minimum it reaches before a lower basin does, using the same dual-queue
// traversal as Improved.
//
// If alterElevations is true, depressions are raised as a side effect,
// exactly as Improved would; if false, elevations are left untouched and
// only labels is populated. labels must already be allocated with the same
// dimensions as elevations.
func Watersheds[T Number](elevations *Grid[T], labels *Grid[int32], alterElevations bool) error {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return ErrGridTooSmall
	}
	if labels.Width() != w || labels.Height() != h {
		return ErrDimensionMismatch
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()
	pits := newPitQueue[T]()
	var nextLabel int32 = 1

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

		if labels.At(cx, cy) == WatershedNoLabel && elevations.At(cx, cy) != elevations.NoData() {
			labels.Set(cx, cy, nextLabel)
			nextLabel++
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
			labels.Set(nx, ny, labels.At(cx, cy))
			if nz <= cz {
				if alterElevations && nz < cz {
					nz = cz
					elevations.Set(nx, ny, nz)
				}
				pits.push(nx, ny, cz)
				continue
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return nil
}
