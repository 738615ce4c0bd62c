package rtree

import (
	"errors"
	"io"
	"sync"
)

// SyncRTree guards an RTree with a reader-writer lock. Any number of queries
// may run at the same time while no insertion is in flight.
type SyncRTree struct {
	mutex sync.RWMutex
	tree  *RTree
}

// NewSync wraps tree for concurrent use. The caller must not access tree
// directly afterwards.
func NewSync(tree *RTree) *SyncRTree {
	if tree == nil {
		tree = &RTree{}
	}
	return &SyncRTree{tree: tree}
}

// Insert adds a point to the tree.
func (s *SyncRTree) Insert(p Point) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tree.Insert(p)
}

// InsertFrom inserts all points of a source. The lock is held for one point
// at a time, so queries may interleave with a long-running load.
func (s *SyncRTree) InsertFrom(src PointSource) (int, error) {
	var count int
	for {
		p, err := src.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		} else if err != nil {
			return count, err
		}
		s.Insert(p)
		count++
	}
}

// Query returns every point inside box.
func (s *SyncRTree) Query(box MBR) []Point {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Query(box)
}

// Search calls callback for every point inside box. The read lock is held
// during the whole search, so the callback must not insert into s.
func (s *SyncRTree) Search(box MBR, callback func(p Point) error) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Search(box, callback)
}

// Len returns the number of points in the tree.
func (s *SyncRTree) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Len()
}

// Height returns the number of levels of the tree.
func (s *SyncRTree) Height() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Height()
}

// Extent gives the box bounding all points, or false for an empty tree.
func (s *SyncRTree) Extent() (MBR, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Extent()
}

// Check validates the invariants of the wrapped tree.
func (s *SyncRTree) Check() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Check()
}
