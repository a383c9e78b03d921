// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/gospatial-labs/priorityflood/flood"
	"github.com/gospatial-labs/priorityflood/geospatialfiles/raster"
	"github.com/gospatial-labs/priorityflood/tools"
)

// runAlgorithm dispatches on both the algorithm id and the caller-selected
// element type. Raster payloads are always staged as float64 (per the
// raster collaborator contract); coercing into the requested element type
// here is exactly the "type-erased dispatch over raster element types"
// the core declines to own, instantiating the generic flood entry points
// once per concrete type instead of branching inside their inner loops.
func runAlgorithm(id int, r *raster.Raster) (string, error) {
	g, err := tools.RasterToGrid(r)
	if err != nil {
		return "", err
	}

	if verbose {
		before := tools.ComputeGridStats(g, 4)
		log.WithFields(log.Fields{
			"min": before.Min, "max": before.Max, "mean": before.Mean,
			"noDataRows": before.NoDataRows,
		}).Info("input grid statistics")
	}

	snapshot := snapshotRows(g)

	var summary string
	switch {
	case elementType == "float64":
		summary, err = dispatchFloat(id, g)
	case elementType == "float32" && id == 3:
		summary, err = dispatchEpsilonFloat32(g)
	case elementType == "float32":
		summary, err = dispatchConverted[float32](id, g)
	default:
		summary, err = dispatchByName(id, g)
	}
	if err != nil {
		return "", err
	}

	tools.GridToRaster(g, r)

	if verbose {
		after := tools.ComputeGridStats(g, 4)
		log.WithFields(log.Fields{
			"min": after.Min, "max": after.Max, "mean": after.Mean,
		}).Info("output grid statistics")
		top := tools.RankRowsByPitDensity(snapshot, snapshotRows(g), 5)
		for _, r := range top {
			log.WithFields(log.Fields{"row": r.Row, "cellsRaised": r.Count}).Info("pit-dense row")
		}
	}

	return summary, nil
}

func dispatchEpsilonFloat32(g *flood.Grid[float64]) (string, error) {
	converted := convert[float32](g)
	result, err := flood.Epsilon(converted)
	copyBack(converted, g)
	return fmt.Sprintf("%d cells raised, %d false pits", result.PitCount, result.FalsePits), err
}

// dispatchByName handles the element types that always require a
// conversion round trip (no direct-float64 or Epsilon-specific path
// applies).
func dispatchByName(id int, g *flood.Grid[float64]) (string, error) {
	switch elementType {
	case "uint32":
		return dispatchConverted[uint32](id, g)
	case "int32":
		return dispatchConverted[int32](id, g)
	case "uint16":
		return dispatchConverted[uint16](id, g)
	case "int16":
		return dispatchConverted[int16](id, g)
	case "byte":
		return dispatchConverted[uint8](id, g)
	}
	return "", fmt.Errorf("unrecognized element type %q", elementType)
}

func snapshotRows(g *flood.Grid[float64]) [][]float64 {
	rows := make([][]float64, g.Height())
	for y := range rows {
		row := make([]float64, g.Width())
		for x := range row {
			row[x] = g.At(x, y)
		}
		rows[y] = row
	}
	return rows
}

// dispatchFloat runs id directly over the float64 grid; no conversion is
// needed since the raster collaborator already stages payloads as float64.
func dispatchFloat(id int, g *flood.Grid[float64]) (string, error) {
	switch id {
	case 1:
		pits, err := flood.Original(g)
		return fmt.Sprintf("%d cells raised", pits), err
	case 2:
		pits, err := flood.Improved(g)
		return fmt.Sprintf("%d cells raised", pits), err
	case 3:
		result, err := flood.Epsilon(g)
		return fmt.Sprintf("%d cells raised, %d false pits", result.PitCount, result.FalsePits), err
	case 4:
		directions := flood.CopyProps[int8](g, flood.NoFlow)
		err := flood.FlowDirs(g, directions)
		copyInto(g, directions)
		return "flow directions computed", err
	case 5:
		labels := flood.CopyProps[int32](g, flood.WatershedNoLabel)
		err := flood.Watersheds(g, labels, alterFlag)
		copyInto(g, labels)
		return "watershed labels assigned", err
	case 6:
		pits, err := flood.Zhou2016(g)
		return fmt.Sprintf("%d cells raised", pits), err
	}
	return "", fmt.Errorf("unrecognized algorithm-id %d", id)
}

// dispatchConverted coerces the elevation payload into T, runs id over a
// flood.Grid[T], and copies the (possibly mutated) result back into the
// caller's float64 grid. FlowDirs and Watersheds write into their own
// int8/int32 output grids, and that output grid is what ends up in the
// caller's grid: for Watersheds the converted elevations are copied back
// first and then overwritten by the labels.
func dispatchConverted[T flood.Number](id int, g *flood.Grid[float64]) (string, error) {
	converted := convert[T](g)

	switch id {
	case 1:
		pits, err := flood.Original(converted)
		copyBack(converted, g)
		return fmt.Sprintf("%d cells raised", pits), err
	case 2:
		pits, err := flood.Improved(converted)
		copyBack(converted, g)
		return fmt.Sprintf("%d cells raised", pits), err
	case 3:
		return "", fmt.Errorf("epsilon flooding requires --type float32 or float64, got %s", elementType)
	case 4:
		directions := flood.CopyProps[int8](converted, flood.NoFlow)
		err := flood.FlowDirs(converted, directions)
		copyInto(g, directions)
		return "flow directions computed", err
	case 5:
		labels := flood.CopyProps[int32](converted, flood.WatershedNoLabel)
		err := flood.Watersheds(converted, labels, alterFlag)
		copyBack(converted, g)
		copyInto(g, labels)
		return "watershed labels assigned", err
	case 6:
		pits, err := flood.Zhou2016(converted)
		copyBack(converted, g)
		return fmt.Sprintf("%d cells raised", pits), err
	}
	return "", fmt.Errorf("unrecognized algorithm-id %d", id)
}

func convert[T flood.Number](g *flood.Grid[float64]) *flood.Grid[T] {
	out := flood.CopyProps[T](g, T(g.NoData()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			out.Set(x, y, T(g.At(x, y)))
		}
	}
	return out
}

func copyBack[T flood.Number](src *flood.Grid[T], dst *flood.Grid[float64]) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			dst.Set(x, y, float64(src.At(x, y)))
		}
	}
}

// copyInto overlays an auxiliary output grid's values onto dst, so a single
// raster file can carry a derived product (flow directions, labels) back
// out through the same raster.Raster write path.
func copyInto[T flood.Number](dst *flood.Grid[float64], src *flood.Grid[T]) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			dst.Set(x, y, float64(src.At(x, y)))
		}
	}
}

func pitMaskToRaster(r *raster.Raster, outputPath string) error {
	g, err := tools.RasterToGrid(r)
	if err != nil {
		return err
	}
	mask := flood.CopyProps[int32](g, flood.PitMaskNoData)
	if err := flood.PitMask(g, mask); err != nil {
		return err
	}
	copyInto(g, mask)
	tools.GridToRaster(g, r)
	if err := r.SetFileName(outputPath); err != nil {
		return err
	}
	return r.Save()
}
