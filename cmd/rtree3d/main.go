/*
Command rtree3d builds a spatio-temporal R-tree from a T-Drive dataset and runs
a range query around the first loaded fix.

Usage:

	rtree3d [flags]

The query box extends -dx degrees in longitude and latitude and -dt seconds
in time to each side of the first point. With -verify the result is compared
with a linear scan over all loaded points.
*/
package main

import (
	"flag"
	"log"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	var opts options
	flag.StringVar(&opts.dataDir, "data", "dataset", "directory holding the T-Drive .txt files")
	flag.IntVar(&opts.maxFiles, "files", 10, "number of data files to read")
	flag.IntVar(&opts.capacity, "capacity", 20, "maximum number of entries per node")
	flag.StringVar(&opts.split, "split", "first", "split axis policy (first, widest)")
	flag.Float64Var(&opts.dx, "dx", 0.01, "half width of the query box in degrees")
	flag.Float64Var(&opts.dt, "dt", 3600, "half length of the query box in seconds")
	flag.IntVar(&opts.show, "show", 10, "number of result points to print")
	flag.BoolVar(&opts.verify, "verify", false, "compare the result with a linear scan")
	flag.BoolVar(&opts.check, "check", false, "validate the tree invariants after building")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug tracing")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	if opts.debug {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
