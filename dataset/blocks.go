package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/arloliu/torsion/internal/hash"
)

// DefaultMarker is the header line that opens a trial block in combined
// measurement files.
const DefaultMarker = "Force (N), Angle (degrees)"

// ReadBlocks reads a combined file in which every trial starts after a line
// beginning with marker and ends at the next blank line (or end of file).
// Lines outside blocks are free-form notes and are ignored.
//
// The returned series are named "<path>#<n>" with n counting blocks from 1.
func ReadBlocks(path, marker string) ([]*Series, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBlocks(path, marker, raw)
}

// ParseBlocks is ReadBlocks on in-memory content.
func ParseBlocks(source, marker string, raw []byte) ([]*Series, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	var (
		series  []*Series
		inBlock bool
		block   bytes.Buffer
		x, y    []float64
		lineNo  int
	)

	flush := func() {
		if len(x) > 0 {
			series = append(series, &Series{
				x:        x,
				y:        y,
				source:   fmt.Sprintf("%s#%d", source, len(series)+1),
				checksum: hash.Sum(block.Bytes()),
			})
		}
		x, y = nil, nil
		block.Reset()
		inBlock = false
	}

	sc := bufio.NewScanner(bytes.NewReader(trimBOM(raw)))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, marker):
			flush()
			inBlock = true
		case !inBlock:
		case line == "":
			flush()
		default:
			row, err := parseRow(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w: %v", source, lineNo, ErrMalformedRow, err)
			}
			if len(row) != 2 {
				return nil, fmt.Errorf("%s:%d: %w: want 2 fields, got %d", source, lineNo, ErrMalformedRow, len(row))
			}
			x = append(x, row[0])
			y = append(y, row[1])
			block.WriteString(line)
			block.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	flush()

	if len(series) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoData)
	}

	return series, nil
}
