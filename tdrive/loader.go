package tdrive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Zoubou/Multidimensional-Data-Structures/rtree"
	"github.com/guiguan/caster"
)

// DefaultMaxFiles is the number of data files read when a loader is not told
// otherwise.
const DefaultMaxFiles = 5

const subscriberBuffer = 16

// FileLoaded is broadcast to subscribers of a Loader after each data file.
// Err is set if the file could not be read; such a file does not count
// towards the loader's file limit.
type FileLoaded struct {
	Name    string
	Points  int
	Skipped int
	Err     error
}

// Loader reads the data files of a dataset directory. A Loader is single-use:
// once Load has run, its subscribers have been closed.
type Loader struct {
	Dir      string         // dataset directory
	MaxFiles int            // number of files to read; <= 0 means DefaultMaxFiles
	Location *time.Location // time zone of timestamps; nil means UTC

	once sync.Once
	cast *caster.Caster // broadcasts FileLoaded events
	used bool
}

// NewLoader creates a loader for the dataset in dir.
func NewLoader(dir string, maxFiles int) *Loader {
	return &Loader{Dir: dir, MaxFiles: maxFiles}
}

func (l *Loader) caster() *caster.Caster {
	l.once.Do(func() {
		l.cast = caster.New(context.Background())
	})
	return l.cast
}

// Subscribe registers for FileLoaded events of the next Load. The channel
// is closed when loading has finished or ctx is done. It returns nil and
// false if the loader has already run.
//
// Events are delivered with back-pressure: once the channel's buffer is
// full, Load blocks until the subscriber receives or ctx is done. A
// subscriber which stops reading must cancel ctx.
func (l *Loader) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	if l.used {
		return nil, false
	}
	return l.caster().Sub(ctx, subscriberBuffer)
}

// Files lists the candidate data files of the dataset, in name order.
func (l *Loader) Files() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDataset, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".txt") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .txt files in %s", ErrNoDataset, l.Dir)
	}
	return files, nil
}

// Load reads up to MaxFiles data files and returns the points of all valid
// fixes, in file order and line order. A file which cannot be opened or read
// is reported and passed over; points read from it before the failure are
// kept.
func (l *Loader) Load() ([]rtree.Point, error) {
	if l.used {
		return nil, ErrLoaderUsed
	}
	l.used = true
	cast := l.caster()
	defer cast.Close()

	files, err := l.Files()
	if err != nil {
		return nil, err
	}
	maxFiles := l.MaxFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	T().Infof("tdrive: found %d data files in %s, reading up to %d", len(files), l.Dir, maxFiles)

	var points []rtree.Point
	var processed int
	for _, name := range files {
		loaded, event := l.loadFile(name)
		points = append(points, loaded...)
		cast.Pub(event)
		if event.Err != nil {
			T().Errorf("tdrive: %v", event.Err)
			continue
		}
		T().Debugf("tdrive: loaded %s: %d points, %d skipped", name, event.Points, event.Skipped)
		if processed++; processed >= maxFiles {
			break
		}
	}
	T().Infof("tdrive: loaded %d points from %d files", len(points), processed)
	return points, nil
}

func (l *Loader) loadFile(name string) ([]rtree.Point, FileLoaded) {
	event := FileLoaded{Name: name}
	f, err := os.Open(filepath.Join(l.Dir, name))
	if err != nil {
		event.Err = err
		return nil, event
	}
	defer f.Close()
	r := NewReader(f, name, l.Location)
	points, err := r.ReadAll()
	event.Points, event.Skipped, event.Err = len(points), r.Skipped(), err
	return points, event
}
