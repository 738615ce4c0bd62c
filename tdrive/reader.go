package tdrive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
)

// Reader reads fixes from a single data file. It implements
// rtree.PointSource.
type Reader struct {
	name    string
	loc     *time.Location
	scanner *bufio.Scanner
	line    int
	count   int
	skipped int
}

var _ rtree.PointSource = (*Reader)(nil)

// NewReader creates a reader over r. name is used in diagnostics only.
// Timestamps are interpreted in loc; a nil loc means UTC.
func NewReader(r io.Reader, name string, loc *time.Location) *Reader {
	return &Reader{
		name:    name,
		loc:     loc,
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the point of the next valid fix. Blank lines are ignored and
// malformed lines are skipped. At the end of input Next returns io.EOF.
func (r *Reader) Next() (rtree.Point, error) {
	rec, err := r.NextRecord()
	if err != nil {
		return rtree.Point{}, err
	}
	return rec.Point(), nil
}

// NextRecord is like Next, but returns the full record.
func (r *Reader) NextRecord() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseRecord(line, r.loc)
		if err != nil {
			r.skipped++
			T().Errorf("tdrive: %s:%d: %v", r.name, r.line, err)
			continue
		}
		r.count++
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("tdrive: reading %s: %w", r.name, err)
	}
	return Record{}, io.EOF
}

// Count returns the number of fixes delivered so far.
func (r *Reader) Count() int {
	return r.count
}

// Skipped returns the number of malformed lines skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// ReadAll drains r and returns all points.
func (r *Reader) ReadAll() ([]rtree.Point, error) {
	var points []rtree.Point
	for {
		p, err := r.Next()
		if errors.Is(err, io.EOF) {
			return points, nil
		} else if err != nil {
			return points, err
		}
		points = append(points, p)
	}
}
