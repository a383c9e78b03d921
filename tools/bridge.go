// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package tools bridges the raster I/O collaborator and the flood core: it
// materializes a flood.Grid[float64] from a raster.Raster and writes a grid
// back into a raster, and it computes grid statistics and a pit-density
// report for diagnostics. Running the flood operations is left to callers.
package tools

import (
	"fmt"

	"github.com/gospatial-labs/priorityflood/flood"
	"github.com/gospatial-labs/priorityflood/geospatialfiles/raster"
	"github.com/gospatial-labs/priorityflood/structures"
)

// RasterToGrid reads r's payload into a structures.RectangularArrayFloat64
// staging buffer (so the row-major copy happens over one contiguous
// allocation rather than scattering individual row slices) and then copies
// it into a flood.Grid[float64].
func RasterToGrid(r *raster.Raster) (*flood.Grid[float64], error) {
	data, err := r.Data()
	if err != nil {
		return nil, fmt.Errorf("tools: reading raster data: %w", err)
	}
	staging := structures.NewRectangularArrayFloat64(r.Rows, r.Columns, r.NoDataValue)
	if err := staging.InitializeWithData(data); err != nil {
		return nil, fmt.Errorf("tools: staging raster payload: %w", err)
	}

	g := flood.NewGrid[float64](r.Columns, r.Rows, r.NoDataValue)
	g.SetGeoreference(r.GetCellSizeX(), r.West, r.South)
	for row := 0; row < r.Rows; row++ {
		rowData := staging.GetRowData(row)
		for col := 0; col < r.Columns; col++ {
			g.Set(col, row, rowData[col])
		}
	}
	return g, nil
}

// GridToRaster writes g's payload back into r in place, via the same
// RectangularArrayFloat64 staging buffer used by RasterToGrid.
func GridToRaster(g *flood.Grid[float64], r *raster.Raster) {
	staging := structures.NewRectangularArrayFloat64(g.Height(), g.Width(), g.NoData())
	for row := 0; row < g.Height(); row++ {
		rowData := make([]float64, g.Width())
		for col := 0; col < g.Width(); col++ {
			rowData[col] = g.At(col, row)
		}
		staging.SetRowData(row, rowData)
	}

	flat := make([]float64, g.Width()*g.Height())
	for row := 0; row < g.Height(); row++ {
		copy(flat[row*g.Width():(row+1)*g.Width()], staging.GetRowData(row))
	}
	r.SetData(flat)
}
