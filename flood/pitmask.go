// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// PitMaskNoData is the sentinel PitMask assigns to cells whose elevation
// is no_data.
const PitMaskNoData int32 = 3

// PitMask identifies which cells would be raised by Improved without
// actually raising them: it runs the same dual-queue traversal and flags
// any cell observed to sit below its drain neighbor. mask cells are 0
// (untouched), 1 (inside a depression), or PitMaskNoData for cells whose
// elevation is no_data.
//
// mask must already be allocated with the same dimensions as elevations.
func PitMask[T Number](elevations *Grid[T], mask *Grid[int32]) error {
	w, h := elevations.Width(), elevations.Height()
	if w < 2 || h < 2 {
		return ErrGridTooSmall
	}
	if mask.Width() != w || mask.Height() != h {
		return ErrDimensionMismatch
	}

	closed := NewGrid[bool](w, h, false)
	frontier := NewFrontier[T]()
	pits := newPitQueue[T]()

	// mask's default cell value is 0 (untouched); PitMaskNoData marks only
	// cells whose underlying elevation is no_data, so the CopyProps fill
	// (which uses the mask's own no_data sentinel) must be reset here.
	mask.Fill(0)

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

		if elevations.At(cx, cy) == elevations.NoData() {
			mask.Set(cx, cy, PitMaskNoData)
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
					mask.Set(nx, ny, 1)
				}
				pits.push(nx, ny, cz)
				continue
			}
			frontier.Push(nx, ny, nz)
		}
	}
	return nil
}
