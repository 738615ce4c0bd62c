package rtree

// node is a node in an R-Tree. Nodes can either be leaf nodes holding points,
// or internal nodes holding the arena indices of their children. Exactly one of
// points and children is in use, selected by isLeaf.
type node struct {
	isLeaf   bool
	points   []Point
	children []int

	// bounds caches the union of the node's contents. It is only valid if
	// bounded is set; an empty node covers nothing.
	bounds  MBR
	bounded bool
}

func (n *node) numEntries() int {
	if n.isLeaf {
		return len(n.points)
	}
	return len(n.children)
}

// isFull is checked only after an entry has been added, so a node may hold
// exactly maxCapacity entries until it is split.
func (n *node) isFull(maxCapacity int) bool {
	return n.numEntries() >= maxCapacity
}

// calculateBound calculates the smallest box that fits the contents of a node.
// The second return value is false for an empty node.
func (t *RTree) calculateBound(idx int) (MBR, bool) {
	n := &t.nodes[idx]
	if n.isLeaf {
		box, err := MBRFromPoints(n.points)
		return box, err == nil
	}
	var box MBR
	var bounded bool
	for _, c := range n.children {
		child := &t.nodes[c]
		if !child.bounded {
			continue
		}
		if bounded {
			box = box.Union(child.bounds)
		} else {
			box, bounded = child.bounds, true
		}
	}
	return box, bounded
}

// updateBounds recomputes the cached box of a node. It has to be called after
// every change to the node's entries; nodes never do this on their own.
func (t *RTree) updateBounds(idx int) {
	box, bounded := t.calculateBound(idx)
	t.nodes[idx].bounds = box
	t.nodes[idx].bounded = bounded
}

// entryBoxes returns the box of every entry of a node, in entry order. Points
// are represented by flat boxes.
func (t *RTree) entryBoxes(idx int) []MBR {
	n := &t.nodes[idx]
	boxes := make([]MBR, 0, n.numEntries())
	if n.isLeaf {
		for _, p := range n.points {
			boxes = append(boxes, pointBox(p))
		}
		return boxes
	}
	for _, c := range n.children {
		boxes = append(boxes, t.nodes[c].bounds)
	}
	return boxes
}
