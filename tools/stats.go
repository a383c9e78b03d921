// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"sync"

	"github.com/gospatial-labs/priorityflood/flood"
	"github.com/gospatial-labs/priorityflood/structures"
)

// GridStats summarizes an elevation grid ahead of flooding: the
// --verbose CLI path logs these so a user can sanity-check the input
// before committing to a run over a large DEM.
type GridStats struct {
	Min, Max   float64
	Mean       float64
	NoDataRows int
}

// ComputeGridStats scans g concurrently, one goroutine per row band: each
// band accumulates its partial sum into a ParallelRectangularArrayFloat64
// (one mutex-guarded cell per band) and sets a ParallelRectangularArrayByte
// flag for each row that contains a no_data cell. Bulk scans like this are
// exactly the kind of independent-write workload the concurrency model
// allows parallelizing.
func ComputeGridStats(g *flood.Grid[float64], workers int) GridStats {
	w, h := g.Width(), g.Height()
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}

	partialSums := structures.NewParallelRectangularArrayFloat64(1, workers, 0)
	rowHasNoData := structures.NewParallelRectangularArrayByte(1, h)

	rowsPerWorker := (h + workers - 1) / workers
	var wg sync.WaitGroup
	var mu sync.Mutex
	min, max := g.NoData(), g.NoData()
	haveMinMax := false
	var count int64

	for wkr := 0; wkr < workers; wkr++ {
		lo := wkr * rowsPerWorker
		hi := lo + rowsPerWorker
		if hi > h {
			hi = h
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(band, lo, hi int) {
			defer wg.Done()
			localMin, localMax := 0.0, 0.0
			localHave := false
			var localCount int64
			for y := lo; y < hi; y++ {
				hasND := byte(0)
				for x := 0; x < w; x++ {
					v := g.At(x, y)
					if v == g.NoData() {
						hasND = 1
						continue
					}
					partialSums.IncrementAndReturn(0, band, v)
					localCount++
					if !localHave {
						localMin, localMax = v, v
						localHave = true
					} else if v < localMin {
						localMin = v
					} else if v > localMax {
						localMax = v
					}
				}
				rowHasNoData.SetValue(0, y, hasND)
			}
			mu.Lock()
			defer mu.Unlock()
			count += localCount
			if localHave {
				if !haveMinMax {
					min, max = localMin, localMax
					haveMinMax = true
				} else {
					if localMin < min {
						min = localMin
					}
					if localMax > max {
						max = localMax
					}
				}
			}
		}(wkr, lo, hi)
	}
	wg.Wait()

	var total float64
	for band := 0; band < workers; band++ {
		total += partialSums.Value(0, band)
	}

	noDataRows := 0
	for y := 0; y < h; y++ {
		if rowHasNoData.Value(0, y) != 0 {
			noDataRows++
		}
	}

	stats := GridStats{Min: min, Max: max, NoDataRows: noDataRows}
	if count > 0 {
		stats.Mean = total / float64(count)
	}
	return stats
}
