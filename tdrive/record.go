package tdrive

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
)

// TimeLayout is the layout of timestamps in the dataset.
const TimeLayout = "2006-01-02 15:04:05"

// Record is a single GPS fix of a taxi.
type Record struct {
	TaxiID    string
	Time      time.Time
	Longitude float64
	Latitude  float64
}

// Point converts a fix to an index point (longitude, latitude, unix seconds).
func (r Record) Point() rtree.Point {
	return rtree.Point{X: r.Longitude, Y: r.Latitude, T: float64(r.Time.Unix())}
}

// ParseRecord parses one line of a data file. Timestamps are interpreted in
// loc; a nil loc means UTC. Errors wrap ErrMalformedRecord.
func ParseRecord(line string, loc *time.Location) (Record, error) {
	if loc == nil {
		loc = time.UTC
	}
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 4 {
		return Record{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedRecord, len(parts))
	}
	ts, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	lon, err := parseCoordinate(parts[2])
	if err != nil {
		return Record{}, err
	}
	lat, err := parseCoordinate(parts[3])
	if err != nil {
		return Record{}, err
	}
	return Record{
		TaxiID:    strings.TrimSpace(parts[0]),
		Time:      ts,
		Longitude: lon,
		Latitude:  lat,
	}, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: coordinate %q is not finite", ErrMalformedRecord, s)
	}
	return v, nil
}
