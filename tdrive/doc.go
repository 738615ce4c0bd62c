/*
Package tdrive reads GPS fixes of the T-Drive taxi trajectory dataset and
delivers them as points for the rtree index.

A dataset is a directory of text files, one file per taxi, one fix per line:

	taxi_id,YYYY-MM-DD HH:MM:SS,longitude,latitude

Longitude becomes the point's X coordinate, latitude its Y coordinate, and the
timestamp (seconds since the Unix epoch) its T coordinate. Lines which do not
parse are skipped and counted; they never reach the index.
*/
package tdrive

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
