package rtree

import "fmt"

// DefaultMaxCapacity is the node fanout used when no other capacity is given.
const DefaultMaxCapacity = 20

// RTree is an in-memory R-Tree over points in (x, y, t). Its zero value is an
// empty R-Tree using the default insertion policy.
//
// An RTree is not safe for concurrent use; see SyncRTree.
type RTree struct {
	nodes  []node // arena; children are referenced by index
	root   int
	height int
	size   int
	policy InsertionPolicy
}

// InsertionPolicy alters the behaviour when inserting new points to an RTree.
type InsertionPolicy struct {
	maxCapacity int
	split       SplitPolicy
}

// NewInsertionPolicy creates a new insertion policy with the given maximum
// number of entries per node. Nodes are split as soon as they reach this
// capacity, so it must be at least 2.
func NewInsertionPolicy(maxCapacity int) (InsertionPolicy, error) {
	if maxCapacity < 2 {
		return InsertionPolicy{}, fmt.Errorf("%w: max capacity must be at least 2, is %d",
			ErrInvalidConfig, maxCapacity)
	}
	return InsertionPolicy{maxCapacity: maxCapacity, split: FirstAxisSplit{}}, nil
}

// WithSplit returns a copy of the policy which splits nodes along the axis
// selected by s. A nil s leaves the policy unchanged.
func (p InsertionPolicy) WithSplit(s SplitPolicy) InsertionPolicy {
	if s != nil {
		p.split = s
	}
	return p
}

// MaxCapacity returns the maximum number of entries per node.
func (p InsertionPolicy) MaxCapacity() int {
	return p.maxCapacity
}

// Split returns the split policy in use.
func (p InsertionPolicy) Split() SplitPolicy {
	return p.split
}

// New creates an empty R-Tree with the given node capacity and the default
// split policy.
func New(maxCapacity int) (*RTree, error) {
	policy, err := NewInsertionPolicy(maxCapacity)
	if err != nil {
		return nil, err
	}
	return NewWithPolicy(policy)
}

// NewWithPolicy creates an empty R-Tree using an insertion policy.
func NewWithPolicy(policy InsertionPolicy) (*RTree, error) {
	if policy.maxCapacity < 2 {
		return nil, fmt.Errorf("%w: insertion policy not initialized", ErrInvalidConfig)
	}
	if policy.split == nil {
		policy.split = FirstAxisSplit{}
	}
	t := &RTree{policy: policy}
	t.init()
	return t, nil
}

// init sets up the initial root, an empty leaf.
func (t *RTree) init() {
	if t.policy.maxCapacity == 0 {
		t.policy = InsertionPolicy{maxCapacity: DefaultMaxCapacity, split: FirstAxisSplit{}}
	}
	t.nodes = append(t.nodes[:0], node{isLeaf: true})
	t.root = 0
	t.height = 1
	t.size = 0
}

// Policy returns the insertion policy of the tree.
func (t *RTree) Policy() InsertionPolicy {
	if t.policy.maxCapacity == 0 {
		return InsertionPolicy{maxCapacity: DefaultMaxCapacity, split: FirstAxisSplit{}}
	}
	return t.policy
}

// Len returns the number of points in the tree.
func (t *RTree) Len() int {
	return t.size
}

// Height returns the number of levels of the tree. A tree holding only a
// leaf root has height 1. The height never decreases.
func (t *RTree) Height() int {
	if len(t.nodes) == 0 {
		return 1
	}
	return t.height
}

// Extent gives the box that most closely bounds all points in the tree. If
// the tree is empty, then false is returned.
func (t *RTree) Extent() (MBR, bool) {
	if len(t.nodes) == 0 {
		return MBR{}, false
	}
	root := &t.nodes[t.root]
	return root.bounds, root.bounded
}

// Query returns every point in the tree which lies inside box, boundaries
// included. The order of the result is the depth-first order of the tree.
// An empty tree yields an empty result.
func (t *RTree) Query(box MBR) []Point {
	var found []Point
	_ = t.Search(box, func(p Point) error {
		found = append(found, p)
		return nil
	})
	return found
}

// Search looks for any points in the tree that lie inside the given box. The
// callback is called for each found point. If an error is returned from the
// callback then the search is terminated early. Any error returned from the
// callback is returned by Search, except for the case where the special Stop
// sentinel error is returned (in which case nil will be returned from Search).
//
// The callback must not modify the tree.
func (t *RTree) Search(box MBR, callback func(p Point) error) error {
	if len(t.nodes) == 0 {
		return nil
	}
	var recurse func(int) error
	recurse = func(idx int) error {
		n := &t.nodes[idx]
		if !n.bounded || !n.bounds.Intersects(box) {
			return nil
		}
		if n.isLeaf {
			for _, p := range n.points {
				if !box.ContainsPoint(p) {
					continue
				}
				if err := callback(p); err != nil {
					return err
				}
			}
			return nil
		}
		for _, c := range n.children {
			if err := recurse(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(t.root); err != Stop {
		return err
	}
	return nil
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes  int // total number of nodes
	Leaves int // number of leaf nodes
	Height int // number of levels
	Points int // number of points
}

// Stats reports the shape of the tree.
func (t *RTree) Stats() Stats {
	s := Stats{Height: t.Height(), Points: t.size}
	for i := range t.nodes {
		s.Nodes++
		if t.nodes[i].isLeaf {
			s.Leaves++
		}
	}
	if len(t.nodes) == 0 {
		s.Nodes, s.Leaves = 1, 1
	}
	return s
}
