package rtree

import (
	"errors"
	"io"
	"math"
)

// PointSource supplies points to be inserted into a tree. Next returns io.EOF
// once the source is exhausted. Sources are responsible for rejecting
// malformed input; every point they deliver must have finite coordinates.
type PointSource interface {
	Next() (Point, error)
}

// Insert adds a point to the RTree.
func (t *RTree) Insert(p Point) {
	if len(t.nodes) == 0 {
		t.init()
	}
	sibling, split := t.insert(t.root, p)
	t.size++
	if split {
		t.joinRoots(t.root, sibling)
	}
}

// InsertFrom inserts all points of a source, one at a time, and returns the
// number of points inserted. An error other than io.EOF from the source ends
// the loop and is returned; points inserted so far stay in the tree.
func (t *RTree) InsertFrom(src PointSource) (int, error) {
	var count int
	for {
		p, err := src.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		} else if err != nil {
			return count, err
		}
		t.Insert(p)
		count++
	}
}

// insert descends from node idx to a leaf and adds p there. If node idx had to
// be split on the way back up, the index of its new sibling is returned
// together with true.
func (t *RTree) insert(idx int, p Point) (int, bool) {
	if t.nodes[idx].isLeaf {
		t.nodes[idx].points = append(t.nodes[idx].points, p)
		t.updateBounds(idx)
		if t.nodes[idx].isFull(t.policy.maxCapacity) {
			return t.splitNode(idx), true
		}
		return -1, false
	}

	child := t.chooseSubtree(idx, p)
	sibling, split := t.insert(child, p)
	if split {
		t.nodes[idx].children = append(t.nodes[idx].children, sibling)
		t.updateBounds(idx)
		if t.nodes[idx].isFull(t.policy.maxCapacity) {
			return t.splitNode(idx), true
		}
		return -1, false
	}
	// The child's box may have grown.
	t.updateBounds(idx)
	return -1, false
}

// chooseSubtree selects the child of internal node idx whose box needs the
// least enlargement to cover p. Ties go to the child seen first.
func (t *RTree) chooseSubtree(idx int, p Point) int {
	children := t.nodes[idx].children
	best := children[0]
	bestDelta := math.Inf(+1)
	for _, c := range children {
		child := &t.nodes[c]
		box := pointBox(p)
		if child.bounded {
			box = child.bounds
		}
		if delta := enlargement(box, p); delta < bestDelta {
			bestDelta = delta
			best = c
		}
	}
	return best
}

// joinRoots grows the tree by one level: a new internal root adopts the old
// root and its freshly split sibling.
func (t *RTree) joinRoots(r1, r2 int) {
	t.nodes = append(t.nodes, node{
		isLeaf:   false,
		children: []int{r1, r2},
	})
	t.root = len(t.nodes) - 1
	t.updateBounds(t.root)
	t.height++
	T().Debugf("rtree: root split, height is now %d", t.height)
}

// SliceSource is a PointSource delivering the points of a slice in order.
type SliceSource struct {
	points []Point
	next   int
}

// NewSliceSource creates a point source over points.
func NewSliceSource(points []Point) *SliceSource {
	return &SliceSource{points: points}
}

// Next returns the next point, or io.EOF after the last one.
func (s *SliceSource) Next() (Point, error) {
	if s.next >= len(s.points) {
		return Point{}, io.EOF
	}
	p := s.points[s.next]
	s.next++
	return p, nil
}
