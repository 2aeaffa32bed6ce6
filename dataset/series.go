package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/torsion/internal/collision"
	"github.com/arloliu/torsion/internal/hash"
)

var (
	// ErrMalformedRow is returned when a row cannot be parsed as numbers or
	// has an unexpected number of fields.
	ErrMalformedRow = errors.New("malformed row")
	// ErrNoData is returned when a source contains no data rows.
	ErrNoData = errors.New("no data rows")
	// ErrLengthMismatch is returned by NewSeries for columns of different lengths.
	ErrLengthMismatch = errors.New("columns have different lengths")
)

// Series is an immutable ordered sequence of (x, y) pairs.
//
// X holds the first CSV column and Y the second. For torsion trials these are
// the applied force and the measured angle.
type Series struct {
	x, y     []float64
	source   string
	checksum uint64
}

// NewSeries builds a Series from copies of x and y. The checksum is computed
// over the source name when no raw content is available.
func NewSeries(source string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%s: %w: %d != %d", source, ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoData)
	}

	return &Series{
		x:        slices.Clone(x),
		y:        slices.Clone(y),
		source:   source,
		checksum: hash.ID(source),
	}, nil
}

// Len returns the number of pairs.
func (s *Series) Len() int { return len(s.x) }

// X returns a copy of the first column.
func (s *Series) X() []float64 { return slices.Clone(s.x) }

// Y returns a copy of the second column.
func (s *Series) Y() []float64 { return slices.Clone(s.y) }

// At returns the i-th pair.
func (s *Series) At(i int) (x, y float64) { return s.x[i], s.y[i] }

// Source returns the file name (and block index for combined files) the
// series was read from.
func (s *Series) Source() string { return s.source }

// Checksum returns the xxHash64 of the series' raw content.
func (s *Series) Checksum() uint64 { return s.checksum }

func (s *Series) String() string {
	return fmt.Sprintf("%s (%d rows, %s)", s.source, len(s.x), hash.Hex(s.checksum))
}

// Duplicate names two series with identical raw content.
type Duplicate = collision.Duplicate

// Duplicates reports series whose raw content is identical to an earlier
// series in the list, usually a file copied under the wrong trial index.
func Duplicates(series []*Series) []Duplicate {
	tracker := collision.NewTracker()
	for _, s := range series {
		// a repeated source is the same file listed twice, not a duplicate trial
		_ = tracker.Track(s.source, s.checksum)
	}
	if !tracker.HasDuplicates() {
		return nil
	}

	return slices.Clone(tracker.Duplicates())
}
