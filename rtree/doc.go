/*
Package rtree implements a dynamic, height-balanced R-tree over points in
space and time.

Every point carries two spatial coordinates and a timestamp, and the tree
indexes them by axis-aligned boxes in (x, y, t). Points are added one at a
time with Insert; there is no bulk loading and no deletion. Range queries
return every inserted point inside a search box, boundaries included.

Nodes live in a flat arena owned by the tree. A parent refers to its children
by arena index, and every child has exactly one parent. A node that overflows
is split by sorting its entries along one axis and cutting the sorted list in
half. The axis is chosen by a SplitPolicy; the default always uses the x axis,
which ignores how the data is actually spread. WidestAxisSplit is offered as
an alternative.

An RTree must not be mutated concurrently. SyncRTree wraps a tree with a
reader-writer lock for clients which need to share one.
*/
package rtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
