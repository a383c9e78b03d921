// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package flood implements the Priority-Flood family of depression-filling
// algorithms over in-memory elevation grids: Original, Improved, Epsilon,
// FlowDirs, PitMask, Watersheds and the Zhou2016 two-stage variant.
package flood

// Number is the set of element types an elevation Grid may hold. It mirrors
// the raster element types accepted by the elevation provider collaborator:
// unsigned and signed integers plus both float widths.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~int16 | ~int32 | ~float32 | ~float64
}

// Float restricts a Grid to the element types Epsilon-flooding can operate
// on; strict monotone descent requires a representable "next" value, which
// only floating point types provide via nextafter.
type Float interface {
	~float32 | ~float64
}

// Grid is a rectangular array of cells of element type T with a designated
// no_data sentinel. It is the grid primitive described by the core: width,
// height, in-bounds/edge tests, element access, bulk fill, and
// copy-properties-without-data.
//
// A Grid does not know how to read or write any file format; that is the
// job of a raster I/O collaborator (see the raster package), which
// materializes a Grid and hands it to the flood package.
type Grid[T comparable] struct {
	width, height int
	data          []T
	noData        T
	cellSize      float64
	xllCorner     float64
	yllCorner     float64
}

// NewGrid allocates a width x height grid filled with noData.
func NewGrid[T comparable](width, height int, noData T) *Grid[T] {
	g := &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
		noData: noData,
	}
	g.Fill(noData)
	return g
}

// CopyProps allocates a new grid with the same dimensions, cell size and
// corner coordinates as src, but with its own no_data sentinel and no
// copied payload. This mirrors array2d::copyprops from the original
// implementation, generalized across element types via Go generics rather
// than C++ template instantiation.
func CopyProps[T comparable, U comparable](src *Grid[U], noData T) *Grid[T] {
	dst := NewGrid[T](src.width, src.height, noData)
	dst.cellSize = src.cellSize
	dst.xllCorner = src.xllCorner
	dst.yllCorner = src.yllCorner
	return dst
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// NoData returns the sentinel value marking the absence of terrain.
func (g *Grid[T]) NoData() T { return g.noData }

// SetNoData overrides the no_data sentinel without touching the payload.
func (g *Grid[T]) SetNoData(v T) { g.noData = v }

// CellSize, XLLCorner and YLLCorner expose the georeferencing metadata
// carried along by CopyProps. The flood algorithms never read these; they
// exist so a raster I/O collaborator can round-trip them.
func (g *Grid[T]) CellSize() float64  { return g.cellSize }
func (g *Grid[T]) XLLCorner() float64 { return g.xllCorner }
func (g *Grid[T]) YLLCorner() float64 { return g.yllCorner }

func (g *Grid[T]) SetGeoreference(cellSize, xll, yll float64) {
	g.cellSize = cellSize
	g.xllCorner = xll
	g.yllCorner = yll
}

// InGrid reports whether (x,y) lies within [0,width) x [0,height).
func (g *Grid[T]) InGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// EdgeGrid reports whether (x,y) lies on the outer ring of the grid.
func (g *Grid[T]) EdgeGrid(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// At returns the value at (x,y). The caller must ensure in-bounds access;
// like the original array2d, Grid trades bounds-checked accessors for
// plain indexing in the hot loop.
func (g *Grid[T]) At(x, y int) T {
	return g.data[y*g.width+x]
}

// Set stores v at (x,y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[y*g.width+x] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillParallel sets every cell to v, splitting the work across disjoint row
// ranges. Per the concurrency model, bulk initialization writes are
// independent and may be parallelized; this is an implementation option; use
// Fill for small grids where goroutine setup would dominate the cost.
func (g *Grid[T]) FillParallel(v T, workers int) {
	if workers < 1 {
		workers = 1
	}
	if g.height < workers*2 {
		g.Fill(v)
		return
	}
	rowsPerWorker := (g.height + workers - 1) / workers
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > g.height {
			endRow = g.height
		}
		if startRow >= endRow {
			done <- struct{}{}
			continue
		}
		go func(lo, hi int) {
			row := g.data[lo*g.width : hi*g.width]
			for i := range row {
				row[i] = v
			}
			done <- struct{}{}
		}(startRow, endRow)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
}

// Equal reports whether g and other have identical dimensions and payload.
// It is used by the idempotence and variant-agreement tests (properties 6
// and 7): running Improved twice, or running Improved and Zhou2016 once
// each, must produce bit-exact grids.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of g, including its payload.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		width:     g.width,
		height:    g.height,
		noData:    g.noData,
		cellSize:  g.cellSize,
		xllCorner: g.xllCorner,
		yllCorner: g.yllCorner,
		data:      make([]T, len(g.data)),
	}
	copy(out.data, g.data)
	return out
}
