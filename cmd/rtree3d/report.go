package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
	"github.com/Zoubou/Multidimensional-Data-Structures/tdrive"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// report writes the console output of a run. Its methods may be called from
// the progress goroutine and the main goroutine at the same time.
type report struct {
	mutex sync.Mutex
	w     io.Writer
	width int

	head, good, bad, timed *color.Color
}

func newReport(w io.Writer) *report {
	return &report{
		w:     w,
		width: terminalWidth(),
		head:  color.New(color.FgCyan, color.Bold),
		good:  color.New(color.FgGreen),
		bad:   color.New(color.FgRed, color.Bold),
		timed: color.New(color.FgYellow),
	}
}

// terminalWidth returns the width of stdout if it is a terminal, and 80
// otherwise.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w >= 40 {
			return w
		}
	}
	return 80
}

func (r *report) heading(title string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	line := "--- " + title + " "
	if pad := r.width - len(line); pad > 0 {
		line += strings.Repeat("-", pad)
	}
	fmt.Fprintln(r.w)
	r.head.Fprintln(r.w, line)
}

func (r *report) linef(format string, args ...interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	fmt.Fprintln(r.w, r.clip(fmt.Sprintf(format, args...)))
}

func (r *report) timing(what string, d time.Duration) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	fmt.Fprintf(r.w, "%s: ", what)
	r.timed.Fprintf(r.w, "%.6f seconds\n", d.Seconds())
}

func (r *report) ok(msg string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.good.Fprintln(r.w, "OK: "+msg)
}

func (r *report) fail(msg string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.bad.Fprintln(r.w, "FAILED: "+msg)
}

// points prints at most limit points as a table.
func (r *report) points(points []rtree.Point, limit int) {
	if limit <= 0 || len(points) == 0 {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.head.Fprintln(r.w, r.clip(fmt.Sprintf("%12s %12s  %s", "longitude", "latitude", "time (UTC)")))
	for i, p := range points {
		if i == limit {
			fmt.Fprintf(r.w, "... and %d more\n", len(points)-limit)
			break
		}
		ts := time.Unix(int64(p.T), 0).UTC().Format(tdrive.TimeLayout)
		fmt.Fprintln(r.w, r.clip(fmt.Sprintf("%12.5f %12.5f  %s", p.X, p.Y, ts)))
	}
}

// progress prints the per-file events of a loader until the event channel
// is closed. The loader closes it once Load returns; cancelling ctx only
// serves to abandon the loader early and may drop events still buffered.
func (r *report) progress(ctx context.Context, events <-chan interface{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			loaded, isFile := ev.(tdrive.FileLoaded)
			if !isFile {
				continue
			}
			if loaded.Err != nil {
				r.fail(fmt.Sprintf("%s: %v", loaded.Name, loaded.Err))
				continue
			}
			r.ok(fmt.Sprintf("%s (%d points, %d skipped)", loaded.Name, loaded.Points, loaded.Skipped))
		}
	}
}

func (r *report) clip(s string) string {
	if len(s) > r.width {
		return s[:r.width]
	}
	return s
}
