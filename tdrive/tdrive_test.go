package tdrive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord("1,2008-02-02 15:36:08,116.51172,39.92123", nil)
	if err != nil {
		t.Fatal(err)
	}
	if rec.TaxiID != "1" || rec.Longitude != 116.51172 || rec.Latitude != 39.92123 {
		t.Errorf("unexpected record %+v", rec)
	}
	want := time.Date(2008, 2, 2, 15, 36, 8, 0, time.UTC)
	if !rec.Time.Equal(want) {
		t.Errorf("time = %v, want %v", rec.Time, want)
	}
	p := rec.Point()
	if p != (rtree.Point{X: 116.51172, Y: 39.92123, T: float64(want.Unix())}) {
		t.Errorf("unexpected point %v", p)
	}
}

func TestParseRecordLocation(t *testing.T) {
	beijing := time.FixedZone("CST", 8*60*60)
	rec, err := ParseRecord("1,2008-02-02 08:00:00,116.5,39.9", beijing)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2008, 2, 2, 0, 0, 0, 0, time.UTC); !rec.Time.Equal(want) {
		t.Errorf("time = %v, want %v", rec.Time.UTC(), want)
	}
}

func TestParseRecordRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"1,2008-02-02 15:36:08,116.51172",
		"1,2008/02/02 15:36:08,116.51172,39.92123",
		"1,2008-02-02 15:36:08,east,39.92123",
		"1,2008-02-02 15:36:08,116.51172,NaN",
		"1,2008-02-02 15:36:08,+Inf,39.92123",
	} {
		if _, err := ParseRecord(line, nil); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%q: expected ErrMalformedRecord, got %v", line, err)
		}
	}
}

func TestReaderSkipsMalformedLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := strings.Join([]string{
		"7,2008-02-03 10:00:00,116.1,39.1",
		"",
		"garbage",
		"7,2008-02-03 10:05:00,116.2,39.2",
	}, "\n")
	r := NewReader(strings.NewReader(input), "inline", nil)
	points, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 || r.Count() != 2 || r.Skipped() != 1 {
		t.Fatalf("expected 2 points and 1 skipped line, got %v (skipped=%d)", points, r.Skipped())
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last line, got %v", err)
	}
}

func TestReaderFeedsIndex(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := os.Open(filepath.Join("testdata", "dataset", "1.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rt, err := rtree.New(2)
	if err != nil {
		t.Fatal(err)
	}
	n, err := rt.InsertFrom(NewReader(f, "1.txt", nil))
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || rt.Len() != 5 {
		t.Fatalf("expected 5 points, got n=%d len=%d", n, rt.Len())
	}
	if err := rt.Check(); err != nil {
		t.Fatal(err)
	}
	dup := rtree.Point{X: 116.51135, Y: 39.92883, T: float64(time.Date(2008, 2, 2, 15, 46, 8, 0, time.UTC).Unix())}
	if got := rt.Query(rtree.NewMBR(dup, dup)); len(got) != 2 {
		t.Errorf("expected both copies of the duplicate fix, got %v", got)
	}
}

func TestLoader(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		maxFiles int
		want     int
	}{
		{1, 5},
		{2, 9},
		{0, 11},
		{10, 11},
	}
	for _, tt := range tests {
		l := NewLoader(filepath.Join("testdata", "dataset"), tt.maxFiles)
		points, err := l.Load()
		if err != nil {
			t.Fatal(err)
		}
		if len(points) != tt.want {
			t.Errorf("max files %d: expected %d points, got %d", tt.maxFiles, tt.want, len(points))
		}
	}
}

func TestLoaderFirstPoint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := NewLoader(filepath.Join("testdata", "dataset"), 1)
	points, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := rtree.Point{X: 116.51172, Y: 39.92123, T: float64(time.Date(2008, 2, 2, 15, 36, 8, 0, time.UTC).Unix())}
	if len(points) == 0 || points[0] != want {
		t.Errorf("expected first point %v, got %v", want, points)
	}
	if _, err := l.Load(); !errors.Is(err, ErrLoaderUsed) {
		t.Errorf("expected ErrLoaderUsed on second load, got %v", err)
	}
}

func TestLoaderSubscribe(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := NewLoader(filepath.Join("testdata", "dataset"), 0)
	events, ok := l.Subscribe(context.Background())
	if !ok {
		t.Fatal("expected subscription before Load")
	}
	if _, err := l.Load(); err != nil {
		t.Fatal(err)
	}
	var got []FileLoaded
	for ev := range events {
		got = append(got, ev.(FileLoaded))
	}
	want := []FileLoaded{
		{Name: "1.txt", Points: 5},
		{Name: "2.txt", Points: 4},
		{Name: "3.txt", Points: 2, Skipped: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected events %+v, got %+v", want, got)
	}
	if ch, ok := l.Subscribe(context.Background()); ok || ch != nil {
		t.Error("expected no subscription after Load")
	}
}

func TestLoaderNoDataset(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing"), 1).Load(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("expected ErrNoDataset for missing directory, got %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("nothing here"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLoader(dir, 1).Load(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("expected ErrNoDataset for directory without data files, got %v", err)
	}
}
