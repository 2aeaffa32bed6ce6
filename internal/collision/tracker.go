package collision

import "errors"

var (
	// ErrEmptySource is returned when a checksum is tracked without a source name.
	ErrEmptySource = errors.New("empty source name")
	// ErrSourceTracked is returned when the same source is tracked twice.
	ErrSourceTracked = errors.New("source already tracked")
)

// Duplicate records two sources whose contents hash to the same checksum.
type Duplicate struct {
	First  string // Source tracked first
	Second string // Source that repeated First's content
	Sum    uint64 // Shared content checksum
}

// Tracker detects input sources with identical content checksums.
// It keeps the first source seen for every checksum.
type Tracker struct {
	bySum      map[uint64]string   // Checksum → first source name
	seen       map[string]struct{} // Tracked source names
	duplicates []Duplicate
}

// NewTracker creates a new duplicate tracker.
func NewTracker() *Tracker {
	return &Tracker{
		bySum: make(map[uint64]string),
		seen:  make(map[string]struct{}),
	}
}

// Track records source with its content checksum.
//
// Returns error if:
//   - The source name is empty (ErrEmptySource)
//   - The same source is tracked twice (ErrSourceTracked)
//
// A checksum already seen under another source is not an error; it is
// recorded as a Duplicate.
func (t *Tracker) Track(source string, sum uint64) error {
	if source == "" {
		return ErrEmptySource
	}
	if _, ok := t.seen[source]; ok {
		return ErrSourceTracked
	}

	if first, ok := t.bySum[sum]; ok {
		t.duplicates = append(t.duplicates, Duplicate{First: first, Second: source, Sum: sum})
	} else {
		t.bySum[sum] = source
	}

	t.seen[source] = struct{}{}

	return nil
}

// HasDuplicates returns true if any two tracked sources share a checksum.
func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns the duplicates in the order they were detected.
func (t *Tracker) Duplicates() []Duplicate {
	return t.duplicates
}
