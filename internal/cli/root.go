// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package cli wires the flood core and the raster I/O collaborator into the
// command-line surface: algorithm dispatch, element-type dispatch, logging
// and exit-code mapping all live here, deliberately outside the core.
package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gospatial-labs/priorityflood/geospatialfiles/raster"
)

var (
	elementType string
	verbose     bool
	alterFlag   bool
)

// algorithmNames maps the CLI's 1..6 algorithm-id surface to a display
// name; index 0 is unused so the id can index the table directly.
var algorithmNames = [...]string{"", "Original", "Improved", "Epsilon", "FlowDirs", "Watersheds", "Zhou2016"}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "priorityflood <algorithm-id> <input-path> <output-path>",
		Short: "Fill depressions and derive flow products from a DEM",
		Long: `priorityflood runs one Priority-Flood variant over an elevation raster.

algorithm-id selects the variant:
  1  Original    5  Watersheds
  2  Improved    6  Zhou2016
  3  Epsilon
  4  FlowDirs`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE:         runRoot,
	}
	root.PersistentFlags().StringVar(&elementType, "type", "float64",
		"elevation element type: byte, uint16, int16, uint32, int32, float32, float64")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log grid statistics and a pit-density report before and after the run")
	root.PersistentFlags().BoolVar(&alterFlag, "alter-elevations", true,
		"for Watersheds, also raise depressions as Improved would")

	pitMaskCmd := &cobra.Command{
		Use:   "pitmask <input-path> <output-path>",
		Short: "Emit a pit mask without altering elevations",
		Args:  cobra.ExactArgs(2),
		RunE:  runPitMask,
	}
	root.AddCommand(pitMaskCmd)

	return root
}

// Execute runs the CLI and returns the process exit code. Invalid-input
// and resource-exhaustion failures map to a nonzero code (the source's
// convention for "unrecognized or rejected input" is -1, which on POSIX
// truncates to 255 in the process exit status; internal-invariant panics
// are not recovered here and crash the process, consistent with "fail
// fast").
func Execute() int {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("run failed")
		return -1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	algID, inputPath, outputPath := args[0], args[1], args[2]

	n, err := parseAlgorithmID(algID)
	if err != nil {
		return err
	}

	start := time.Now()
	log.WithFields(log.Fields{
		"algorithm": algorithmNames[n],
		"input":     inputPath,
		"type":      elementType,
	}).Info("starting priority-flood run")

	r, err := raster.CreateRasterFromFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	summary, err := runAlgorithm(n, r)
	if err != nil {
		return err
	}

	if err := r.SetFileName(outputPath); err != nil {
		return fmt.Errorf("preparing %s: %w", outputPath, err)
	}
	if err := r.Save(); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	log.WithFields(log.Fields{
		"algorithm": algorithmNames[n],
		"elapsed":   time.Since(start).String(),
	}).Info(summary)
	return nil
}

func parseAlgorithmID(s string) (int, error) {
	switch s {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	case "3":
		return 3, nil
	case "4":
		return 4, nil
	case "5":
		return 5, nil
	case "6":
		return 6, nil
	}
	return 0, fmt.Errorf("unrecognized algorithm-id %q: must be 1..6", s)
}

func runPitMask(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	r, err := raster.CreateRasterFromFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	if err := pitMaskToRaster(r, outputPath); err != nil {
		return err
	}
	log.WithField("output", outputPath).Info("pit mask written")
	return nil
}
