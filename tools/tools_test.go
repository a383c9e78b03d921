// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospatial-labs/priorityflood/flood"
	"github.com/gospatial-labs/priorityflood/geospatialfiles/raster"
)

func sampleRaster(t *testing.T) *raster.Raster {
	t.Helper()
	r, err := raster.CreateNewRaster("sample.asc", 4, 5, 10, 0, 10, 0)
	require.NoError(t, err)
	r.NoDataValue = -9999
	data := make([]float64, r.Rows*r.Columns)
	for i := range data {
		data[i] = float64(i)
	}
	data[7] = r.NoDataValue
	r.SetData(data)
	return r
}

func TestRasterToGridRoundTrip(t *testing.T) {
	r := sampleRaster(t)
	g, err := RasterToGrid(r)
	require.NoError(t, err)

	assert.Equal(t, r.Columns, g.Width())
	assert.Equal(t, r.Rows, g.Height())
	assert.Equal(t, r.NoDataValue, g.NoData())

	data, err := r.Data()
	require.NoError(t, err)
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Columns; col++ {
			assert.Equal(t, data[row*r.Columns+col], g.At(col, row))
		}
	}
}

func TestGridToRasterRoundTrip(t *testing.T) {
	r := sampleRaster(t)
	g, err := RasterToGrid(r)
	require.NoError(t, err)

	g.Set(2, 1, 123.5)
	GridToRaster(g, r)

	data, err := r.Data()
	require.NoError(t, err)
	assert.Equal(t, 123.5, data[1*r.Columns+2])
}

func TestComputeGridStatsMatchesSequentialReference(t *testing.T) {
	const w, h = 9, 7
	g := flood.NewGrid[float64](w, h, -9999)
	src := []float64{}
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64((x*13 + y*7) % 37)
			if (x+y)%11 == 0 {
				v = g.NoData()
			}
			g.Set(x, y, v)
			if v != g.NoData() {
				src = append(src, v)
				n++
			}
		}
	}

	var wantMin, wantMax, wantSum float64
	haveMinMax := false
	for _, v := range src {
		wantSum += v
		if !haveMinMax {
			wantMin, wantMax = v, v
			haveMinMax = true
			continue
		}
		if v < wantMin {
			wantMin = v
		}
		if v > wantMax {
			wantMax = v
		}
	}

	got := ComputeGridStats(g, 4)
	assert.Equal(t, wantMin, got.Min)
	assert.Equal(t, wantMax, got.Max)
	assert.InDelta(t, wantSum/float64(n), got.Mean, 1e-9)
}

func TestComputeGridStatsSingleWorker(t *testing.T) {
	g := flood.NewGrid[float64](3, 3, -9999)
	g.Fill(4)
	got := ComputeGridStats(g, 1)
	assert.Equal(t, 4.0, got.Min)
	assert.Equal(t, 4.0, got.Max)
	assert.Equal(t, 4.0, got.Mean)
	assert.Zero(t, got.NoDataRows)
}

func TestRankRowsByPitDensityOrdersDescending(t *testing.T) {
	before := [][]float64{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{3, 3, 3, 3},
	}
	after := [][]float64{
		{1, 1, 1, 1},  // row 0: unchanged
		{9, 9, 2, 2},  // row 1: 2 cells changed
		{9, 9, 9, 9},  // row 2: 4 cells changed
	}

	top := RankRowsByPitDensity(before, after, 5)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].Row)
	assert.Equal(t, 4, top[0].Count)
	assert.Equal(t, 1, top[1].Row)
	assert.Equal(t, 2, top[1].Count)
}

func TestRankRowsByPitDensityRespectsLimit(t *testing.T) {
	before := [][]float64{{0}, {0}, {0}, {0}}
	after := [][]float64{{1}, {1}, {1}, {1}}

	top := RankRowsByPitDensity(before, after, 2)
	assert.Len(t, top, 2)
}
