// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Command priorityflood runs one of the Priority-Flood depression-filling
// algorithms over an ArcGIS ASCII raster.
package main

import (
	"os"

	"github.com/gospatial-labs/priorityflood/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
