package rtree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every node is reachable from the root exactly once,
//   - no node holds more than the maximum capacity of entries,
//   - only the root may be empty,
//   - every cached box equals the box recomputed from the node's contents,
//   - all leaves are on the same level, which equals the tree's height,
//   - the number of points found equals Len().
//
// It is meant for tests and diagnostics; a tree built by Insert always passes.
func (t *RTree) Check() error {
	if len(t.nodes) == 0 {
		if t.size != 0 {
			return fmt.Errorf("%w: empty arena holds %d points", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root < 0 || t.root >= len(t.nodes) {
		return fmt.Errorf("%w: root index %d out of range", ErrInvariant, t.root)
	}
	visited := make([]bool, len(t.nodes))
	leafLevel := -1
	var points int
	var check func(idx, level int) error
	check = func(idx, level int) error {
		if idx < 0 || idx >= len(t.nodes) {
			return fmt.Errorf("%w: child index %d out of range", ErrInvariant, idx)
		}
		if visited[idx] {
			return fmt.Errorf("%w: node %d reached twice", ErrInvariant, idx)
		}
		visited[idx] = true
		n := &t.nodes[idx]
		if n.numEntries() > t.policy.maxCapacity {
			return fmt.Errorf("%w: node %d holds %d entries, capacity is %d",
				ErrInvariant, idx, n.numEntries(), t.policy.maxCapacity)
		}
		if idx != t.root && n.numEntries() == 0 {
			return fmt.Errorf("%w: non-root node %d is empty", ErrInvariant, idx)
		}
		if n.isLeaf && len(n.children) != 0 || !n.isLeaf && len(n.points) != 0 {
			return fmt.Errorf("%w: node %d mixes points and children", ErrInvariant, idx)
		}
		box, bounded := t.calculateBound(idx)
		if bounded != n.bounded || bounded && box != n.bounds {
			return fmt.Errorf("%w: node %d caches box %v, contents span %v",
				ErrInvariant, idx, n.bounds, box)
		}
		if n.isLeaf {
			if leafLevel == -1 {
				leafLevel = level
			} else if leafLevel != level {
				return fmt.Errorf("%w: inconsistent leaf level: %d vs %d", ErrInvariant, leafLevel, level)
			}
			points += len(n.points)
			return nil
		}
		for _, c := range n.children {
			if err := check(c, level+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(t.root, 1); err != nil {
		return err
	}
	if leafLevel != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, leafLevel, t.height)
	}
	for i, ok := range visited {
		if !ok {
			return fmt.Errorf("%w: node %d was not visited", ErrInvariant, i)
		}
	}
	if points != t.size {
		return fmt.Errorf("%w: found %d points, tree reports %d", ErrInvariant, points, t.size)
	}
	return nil
}
