package main

import "github.com/Zoubou/Multidimensional-Data-Structures/rtree"

// linearScan tests every point against box.
func linearScan(points []rtree.Point, box rtree.MBR) []rtree.Point {
	var found []rtree.Point
	for _, p := range points {
		if box.ContainsPoint(p) {
			found = append(found, p)
		}
	}
	return found
}

// sameMultiset reports whether a and b hold the same points with the same
// multiplicities, in any order.
func sameMultiset(a, b []rtree.Point) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[rtree.Point]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		if counts[p] == 0 {
			return false
		}
		counts[p]--
	}
	return true
}
