// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import "github.com/gospatial-labs/priorityflood/structures"

// RowPitDensity reports how many cells in one row were raised by a fill.
type RowPitDensity struct {
	Row   int
	Count int
}

// RankRowsByPitDensity compares before and after row by row and returns the
// top n rows with the most cells raised, most-affected first. It is used
// by the CLI's --verbose path to give a human a quick sense of where a DEM's
// depressions are concentrated, without requiring a full raster viewer.
//
// Ranking goes through structures.PQueue (MAXPQ): pushing every row's pit
// count and popping n times is the same access pattern the teacher's tool
// suite used for top-k reporting, now keyed on pit density instead of
// whatever the original tool ranked.
func RankRowsByPitDensity(before, after [][]float64, n int) []RowPitDensity {
	pq := structures.NewPQueue(structures.MAXPQ)
	for row := range before {
		count := 0
		for col := range before[row] {
			if after[row][col] != before[row][col] {
				count++
			}
		}
		if count > 0 {
			pq.Push(RowPitDensity{Row: row, Count: count}, count)
		}
	}

	result := make([]RowPitDensity, 0, n)
	for i := 0; i < n && pq.Len() > 0; i++ {
		result = append(result, pq.Pop().(RowPitDensity))
	}
	return result
}
