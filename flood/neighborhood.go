// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

// NoFlow is the sentinel direction assigned to no_data cells. Boundary
// cells with terrain point outward instead (see edgeDirection).
const NoFlow int8 = -1

// Direction numbering follows the original eight-neighbor convention:
//
//	2 3 4
//	1 0 5
//	8 7 6
//
// dx/dy are indexed by direction 1..8; index 0 is unused padding so the
// direction value can index the table directly.
var dx = [9]int{0, -1, -1, 0, 1, 1, 1, 0, -1}
var dy = [9]int{0, 0, -1, -1, -1, 0, 1, 1, 1}

// inverseDirection maps a direction to the direction a neighbor would use
// to point back at the cell it came from.
var inverseDirection = [9]int8{0, 5, 6, 7, 8, 1, 2, 3, 4}

// visitOrder is the deterministic neighbor visitation order used by
// FlowDirs: cardinal directions before diagonals, so that ties are broken
// the same way regardless of map iteration or scheduling order.
var visitOrder = [8]int{1, 3, 5, 7, 2, 4, 6, 8}

// edgeDirection returns the flow direction assigned to a boundary cell at
// (x,y) in a width x height grid: corners point diagonally outward, the
// remaining border cells point straight out their side.
func edgeDirection(x, y, width, height int) int8 {
	switch {
	case x == 0 && y == 0:
		return 2
	case x == width-1 && y == 0:
		return 4
	case x == 0 && y == height-1:
		return 8
	case x == width-1 && y == height-1:
		return 6
	case x == 0:
		return 1
	case x == width-1:
		return 5
	case y == 0:
		return 3
	case y == height-1:
		return 7
	}
	return NoFlow
}

// neighbor returns the coordinates reached by moving one step from (x,y)
// in the given direction (1..8).
func neighbor(x, y int, dir int) (int, int) {
	return x + dx[dir], y + dy[dir]
}
