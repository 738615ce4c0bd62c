package rtree

import (
	"fmt"
	"sort"
)

// Axis names one of the three dimensions of the index.
type Axis int

// The axes of the index: two spatial coordinates and time.
const (
	AxisX Axis = iota
	AxisY
	AxisT
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisT:
		return "t"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// SplitPolicy chooses the axis along which the entries of an overflowing node
// are sorted before the node is cut in half. entries holds the box of every
// entry of the node; points are given as flat boxes.
type SplitPolicy interface {
	SplitAxis(entries []MBR) Axis
}

// FirstAxisSplit always splits along the x axis, no matter how the entries are
// spread. It is the default policy.
type FirstAxisSplit struct{}

// SplitAxis returns AxisX.
func (FirstAxisSplit) SplitAxis([]MBR) Axis {
	return AxisX
}

// WidestAxisSplit splits along the axis on which the entries spread furthest.
// Extents are compared in raw units, so for geographic data the time axis
// will usually win unless the coordinates are scaled. Ties prefer x, then y.
type WidestAxisSplit struct{}

// SplitAxis returns the axis of greatest extent of the union of entries.
func (WidestAxisSplit) SplitAxis(entries []MBR) Axis {
	if len(entries) == 0 {
		return AxisX
	}
	box := entries[0]
	for _, e := range entries[1:] {
		box = box.Union(e)
	}
	best := AxisX
	for _, axis := range []Axis{AxisY, AxisT} {
		if box.extent(axis) > box.extent(best) {
			best = axis
		}
	}
	return best
}

// splitNode splits node idx into two nodes. The entries are sorted by their
// lower bound along the policy's axis; the front half stays in idx and the
// back half moves to a newly created node of the same kind. The return value
// is the index of the new node.
func (t *RTree) splitNode(idx int) int {
	axis := t.policy.split.SplitAxis(t.entryBoxes(idx))
	n := &t.nodes[idx]
	mid := n.numEntries() / 2
	sibling := node{isLeaf: n.isLeaf}
	if n.isLeaf {
		points := n.points
		sort.SliceStable(points, func(i, j int) bool {
			return pointBox(points[i]).lower(axis) < pointBox(points[j]).lower(axis)
		})
		sibling.points = append([]Point(nil), points[mid:]...)
		n.points = points[:mid]
	} else {
		children := n.children
		sort.SliceStable(children, func(i, j int) bool {
			return t.nodes[children[i]].bounds.lower(axis) < t.nodes[children[j]].bounds.lower(axis)
		})
		sibling.children = append([]int(nil), children[mid:]...)
		n.children = children[:mid]
	}

	// n is invalid from here on: the arena may move.
	t.nodes = append(t.nodes, sibling)
	newIdx := len(t.nodes) - 1
	t.updateBounds(idx)
	t.updateBounds(newIdx)
	T().Debugf("rtree: split node %d along %s, new sibling %d", idx, axis, newIdx)
	return newIdx
}
