package crimefile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/crimeset"
	"github.com/npillmayer/crimeset/crime"
)

// defaultProgressInterval is the number of records between two progress messages.
const defaultProgressInterval = 1000

// Stats summarizes a load operation.
type Stats struct {
	Read       int // data rows read, malformed ones included
	Inserted   int // crimes inserted into the set
	Duplicates int // crimes rejected because of an ID already present
	Malformed  int // rows which could not be decoded
}

// Progress is broadcast to subscribers of a Loader while loading.
type Progress struct {
	Name  string // file name, empty for readers
	Stats Stats
	Done  bool // final message of a load operation
}

// Loader loads crime files and broadcasts progress messages.
type Loader struct {
	cast  *caster.Caster // broadcaster for progress messages
	every int            // records between progress messages
}

// NewLoader creates a loader which broadcasts a progress message every `every`
// records. every <= 0 selects a sensible default.
func NewLoader(every int) *Loader {
	if every <= 0 {
		every = defaultProgressInterval
	}
	return &Loader{
		cast:  caster.New(nil),
		every: every,
	}
}

// Subscribe registers a new subscriber for progress messages. Messages are of
// type Progress. The subscription ends when ctx is done or the loader is closed.
func (l *Loader) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	sub, ok := l.cast.Sub(ctx, 16)
	if !ok {
		return nil, false
	}
	return sub, true
}

// Close stops broadcasting and ends all subscriptions.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads a file, which must be a CSV export of crime data with a header
// row, and inserts all crimes into a new set.
//
// Rows which cannot be decoded and crimes with duplicate IDs are skipped and
// counted in the returned Stats. Errors are returned for I/O problems and for
// a missing or incomplete header only.
func Load(name string) (*crimeset.Set, Stats, error) {
	l := NewLoader(0)
	defer l.Close()
	return l.Load(name)
}

// Load reads a crime file like the package level Load, broadcasting progress
// to subscribers of l.
func (l *Loader) Load(name string) (*crimeset.Set, Stats, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()
	return l.load(name, f)
}

// LoadFrom reads crimes from r, broadcasting progress to subscribers of l.
func (l *Loader) LoadFrom(r io.Reader) (*crimeset.Set, Stats, error) {
	if r == nil {
		return nil, Stats{}, crimeset.ErrIllegalArguments
	}
	return l.load("", r)
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %q is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

func (l *Loader) load(name string, r io.Reader) (*crimeset.Set, Stats, error) {
	set := crimeset.New()
	var stats Stats
	dec := crime.NewDecoder(r)
	for {
		c, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		} else if errors.Is(err, crime.ErrMalformedRecord) {
			stats.Read++
			stats.Malformed++
			T().Infof("skipping record: %v", err)
		} else if err != nil {
			return nil, stats, fmt.Errorf("loading crimes: %w", err)
		} else {
			stats.Read++
			if set.Insert(c) {
				stats.Inserted++
			} else {
				stats.Duplicates++
				T().Debugf("skipping duplicate crime %d at line %d", c.ID, dec.Line())
			}
		}
		if stats.Read%l.every == 0 {
			l.cast.TryPub(Progress{Name: name, Stats: stats})
		}
	}
	l.cast.TryPub(Progress{Name: name, Stats: stats, Done: true})
	T().Infof("loaded %d crimes (%d duplicates, %d malformed)",
		stats.Inserted, stats.Duplicates, stats.Malformed)
	return set, stats, nil
}
