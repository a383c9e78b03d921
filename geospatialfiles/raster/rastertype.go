// Copyright 2014 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Originally created by John Lindsay<jlindsay@uoguelph.ca>, Nov. 2014.

// Package raster provides support for reading and creating geospatial
// raster data in the ArcGIS ASCII format; the tools package bridges that
// data into the flood package's in-memory grid model.
package raster

import (
	"path/filepath"
	"strings"
)

// RasterType is used to specify a data format of a raster file.
type RasterType int

// Integer constants used to specify each of the supported raster formats.
// The original format zoo (binary ArcGIS, Whitebox, GRASS ASCII, GeoTIFF,
// Idrisi, Surfer, SAGA) has been trimmed down to the one collaborator the
// flood core actually needs exercised: ArcGIS ASCII, a plain-text format
// with no external codec dependency.
const (
	RT_UnknownRaster RasterType = iota
	RT_ArcGisAsciiRaster
)

var rasterTypeList = []string{
	"UnknownRaster",
	"ArcGisAsciiRaster",
}

// String returns the English name of the RasterType.
func (rt RasterType) String() string { return rasterTypeList[rt] }

var rasterExtensions = []string{".asc", ".txt"}

// GetExtensions returns the file extensions associated with ArcGIS ASCII
// rasters.
func (rt RasterType) GetExtensions() []string {
	return rasterExtensions
}

// IsSupportedRasterFileExtension reports whether fileName carries an
// extension this package knows how to read.
func IsSupportedRasterFileExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, e := range rasterExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DetermineRasterFormat attempts to determine the raster format from the
// filename's extension.
func DetermineRasterFormat(fileName string) (RasterType, error) {
	if IsSupportedRasterFileExtension(fileName) {
		return RT_ArcGisAsciiRaster, nil
	}
	return RT_UnknownRaster, UnsupportedRasterFormatError
}

// ListAllSupportedRasterFormats returns the English names of every
// supported RasterType.
func ListAllSupportedRasterFormats() []string {
	return rasterTypeList
}

// GetMapOfFormatsAndExtensions returns a map from format name to the file
// extensions associated with it.
func GetMapOfFormatsAndExtensions() map[string][]string {
	return map[string][]string{
		rasterTypeList[RT_ArcGisAsciiRaster]: rasterExtensions,
	}
}
