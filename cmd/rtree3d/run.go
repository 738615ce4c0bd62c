package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
	"github.com/Zoubou/Multidimensional-Data-Structures/tdrive"
)

type options struct {
	dataDir  string
	maxFiles int
	capacity int
	split    string
	dx, dt   float64
	show     int
	verify   bool
	check    bool
	debug    bool
}

func splitPolicy(name string) (rtree.SplitPolicy, error) {
	switch name {
	case "first", "":
		return rtree.FirstAxisSplit{}, nil
	case "widest":
		return rtree.WidestAxisSplit{}, nil
	}
	return nil, fmt.Errorf("unknown split policy %q", name)
}

// queryBox spans dx in x and y and dt in t to each side of p.
func queryBox(p rtree.Point, dx, dt float64) rtree.MBR {
	return rtree.NewMBR(
		rtree.Point{X: p.X - dx, Y: p.Y - dx, T: p.T - dt},
		rtree.Point{X: p.X + dx, Y: p.Y + dx, T: p.T + dt},
	)
}

func run(opts options, w io.Writer) error {
	split, err := splitPolicy(opts.split)
	if err != nil {
		return err
	}
	policy, err := rtree.NewInsertionPolicy(opts.capacity)
	if err != nil {
		return err
	}
	out := newReport(w)

	out.heading("Loading data")
	loader := tdrive.NewLoader(opts.dataDir, opts.maxFiles)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	if events, ok := loader.Subscribe(ctx); ok {
		go func() {
			defer close(done)
			out.progress(ctx, events)
		}()
	} else {
		close(done)
	}
	points, err := loader.Load()
	<-done
	cancel()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no points found in %s", opts.dataDir)
	}
	out.linef("Total points loaded: %d", len(points))

	out.heading("Building R-tree")
	tree, err := rtree.NewWithPolicy(policy.WithSplit(split))
	if err != nil {
		return err
	}
	start := time.Now()
	if _, err := tree.InsertFrom(rtree.NewSliceSource(points)); err != nil {
		return err
	}
	out.timing("Build time", time.Since(start))
	stats := tree.Stats()
	out.linef("Points: %d  nodes: %d  leaves: %d  height: %d  capacity: %d  split: %s",
		stats.Points, stats.Nodes, stats.Leaves, stats.Height, opts.capacity, opts.split)
	if opts.check {
		if err := tree.Check(); err != nil {
			return err
		}
		out.ok("Tree invariants hold")
	}

	out.heading("Range query")
	sample := points[0]
	box := queryBox(sample, opts.dx, opts.dt)
	out.linef("Searching around %v: %v", sample, box)
	start = time.Now()
	results := tree.Query(box)
	out.timing("Query time", time.Since(start))
	out.linef("Found %d points", len(results))
	out.points(results, opts.show)

	if opts.verify {
		out.heading("Linear scan")
		start = time.Now()
		want := linearScan(points, box)
		out.timing("Scan time", time.Since(start))
		if !sameMultiset(results, want) {
			out.fail(fmt.Sprintf("index returned %d points, linear scan %d", len(results), len(want)))
			return fmt.Errorf("query result differs from linear scan")
		}
		out.ok("Index agrees with linear scan")
	}
	return nil
}
