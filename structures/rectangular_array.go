// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file was originally created by John Lindsay<jlindsay@uoguelph.ca>,
// March. 2015.

// Package structures provides flat, cache-friendly 2D array types used to
// stage raster payloads before they are handed to the flood package, and
// mutex-per-cell variants for concurrent bulk scans over that staging
// buffer.
package structures

import (
	"errors"
	"sync"
)

// Create2dFloat64Array returns a 2D float64 array backed by one contiguous
// allocation, so row slices stay adjacent in memory instead of scattered
// across rows*columns individual allocations.
func Create2dFloat64Array(rows, columns int) [][]float64 {
	a := make([][]float64, rows)
	e := make([]float64, rows*columns)
	for i := range a {
		a[i] = e[i*columns : (i+1)*columns]
	}
	return a
}

// RectangularArrayFloat64 is a row-major matrix of float64 values with a
// nodata sentinel, used as the staging buffer between a raster file's flat
// payload and a flood.Grid[float64].
type RectangularArrayFloat64 struct {
	data          []float64
	rows, columns int
	nodata        float64
}

func NewRectangularArrayFloat64(rows, columns int, nodata float64) *RectangularArrayFloat64 {
	r := RectangularArrayFloat64{rows: rows, columns: columns, nodata: nodata}
	r.data = make([]float64, rows*columns)
	return &r
}

// GetRows returns the number of rows.
func (r *RectangularArrayFloat64) GetRows() int { return r.rows }

// GetColumns returns the number of columns.
func (r *RectangularArrayFloat64) GetColumns() int { return r.columns }

// GetNodata returns the nodata sentinel.
func (r *RectangularArrayFloat64) GetNodata() float64 { return r.nodata }

// SetNodata sets the nodata sentinel.
func (r *RectangularArrayFloat64) SetNodata(value float64) { r.nodata = value }

// Value retrieves an individual cell value in the matrix.
func (r *RectangularArrayFloat64) Value(row, column int) float64 {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		return r.data[row*r.columns+column]
	}
	return r.nodata
}

// SetValue sets an individual cell value in the matrix.
func (r *RectangularArrayFloat64) SetValue(row, column int, value float64) {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		r.data[row*r.columns+column] = value
	}
}

// GetRowData returns an entire row of values.
func (r *RectangularArrayFloat64) GetRowData(row int) []float64 {
	values := make([]float64, r.columns)
	copy(values, r.data[row*r.columns:(row+1)*r.columns])
	return values
}

// SetRowData sets an entire row of values.
func (r *RectangularArrayFloat64) SetRowData(row int, values []float64) {
	if row >= 0 && row < r.rows {
		copy(r.data[row*r.columns:(row+1)*r.columns], values)
	}
}

// InitializeWithData replaces the backing array, provided values has
// exactly rows*columns elements.
func (r *RectangularArrayFloat64) InitializeWithData(values []float64) error {
	if len(values) != r.rows*r.columns {
		return ArrayLengthError
	}
	r.data = values
	return nil
}

// mutexByte is a mutex-guarded byte cell.
type mutexByte struct {
	value byte
	sync.Mutex
}

func (m *mutexByte) get() byte {
	m.Lock()
	defer m.Unlock()
	return m.value
}

func (m *mutexByte) set(value byte) {
	m.Lock()
	defer m.Unlock()
	m.value = value
}

// ParallelRectangularArrayByte is a mutex-per-cell byte matrix, used for
// bulk scans where disjoint row ranges are written concurrently (e.g. a
// per-row no-data presence mask computed ahead of flooding).
type ParallelRectangularArrayByte struct {
	data          []mutexByte
	rows, columns int
	sync.RWMutex
}

func NewParallelRectangularArrayByte(rows, columns int) *ParallelRectangularArrayByte {
	r := ParallelRectangularArrayByte{rows: rows, columns: columns}
	r.data = make([]mutexByte, rows*columns)
	return &r
}

func (r *ParallelRectangularArrayByte) GetRows() int {
	r.RLock()
	defer r.RUnlock()
	return r.rows
}

func (r *ParallelRectangularArrayByte) GetColumns() int {
	r.RLock()
	defer r.RUnlock()
	return r.columns
}

// Value retrieves an individual cell value in the matrix.
func (r *ParallelRectangularArrayByte) Value(row, column int) byte {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		return r.data[row*r.columns+column].get()
	}
	return 0
}

// SetValue sets an individual cell value in the matrix.
func (r *ParallelRectangularArrayByte) SetValue(row, column int, value byte) {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		r.data[row*r.columns+column].set(value)
	}
}

// mutexFloat64 is a mutex-guarded float64 cell.
type mutexFloat64 struct {
	value float64
	sync.Mutex
}

func (m *mutexFloat64) get() float64 {
	m.Lock()
	defer m.Unlock()
	return m.value
}

func (m *mutexFloat64) incrementAndReturn(value float64) float64 {
	m.Lock()
	defer m.Unlock()
	m.value += value
	return m.value
}

// ParallelRectangularArrayFloat64 is a mutex-per-cell float64 matrix, used
// to accumulate per-row running statistics (sums, in particular) written
// by concurrent row-range workers.
type ParallelRectangularArrayFloat64 struct {
	data          []mutexFloat64
	rows, columns int
	nodata        float64
	sync.RWMutex
}

func NewParallelRectangularArrayFloat64(rows, columns int, nodata float64) *ParallelRectangularArrayFloat64 {
	r := ParallelRectangularArrayFloat64{rows: rows, columns: columns, nodata: nodata}
	r.data = make([]mutexFloat64, rows*columns)
	return &r
}

func (r *ParallelRectangularArrayFloat64) GetRows() int {
	r.RLock()
	defer r.RUnlock()
	return r.rows
}

func (r *ParallelRectangularArrayFloat64) GetColumns() int {
	r.RLock()
	defer r.RUnlock()
	return r.columns
}

// Value retrieves an individual cell value in the matrix.
func (r *ParallelRectangularArrayFloat64) Value(row, column int) float64 {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		return r.data[row*r.columns+column].get()
	}
	return r.nodata
}

// IncrementAndReturn adds value to cell (row,column) and returns the new
// total, atomically with respect to other writers of the same cell.
func (r *ParallelRectangularArrayFloat64) IncrementAndReturn(row, column int, value float64) float64 {
	if column >= 0 && column < r.columns && row >= 0 && row < r.rows {
		return r.data[row*r.columns+column].incrementAndReturn(value)
	}
	return r.nodata
}

var ArrayLengthError = errors.New("incorrect array length: the specified data array must have rows * columns elements")
var NoDataError = errors.New("there has been an attempt to access a cell beyond the grid edges")
