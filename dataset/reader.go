package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/torsion/compress"
	"github.com/arloliu/torsion/internal/hash"
)

// TrialPath formats the input file name of the trial with the given index,
// e.g. TrialPath("data/trial%d.csv", 3) is "data/trial3.csv".
func TrialPath(pattern string, index int) string {
	return fmt.Sprintf(pattern, index)
}

// ReadSeries reads a two-column file into a Series.
func ReadSeries(path string) (*Series, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return parseSeries(path, raw)
}

// ReadColumns reads a file of any width and returns its columns. Every row
// must have as many fields as the first data row.
func ReadColumns(path string) ([][]float64, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return parseColumns(path, raw, 0)
}

// Parse reads a two-column series from raw content. The source is used in
// error messages and as the series name.
func Parse(source string, raw []byte) (*Series, error) {
	return parseSeries(source, raw)
}

func parseSeries(source string, raw []byte) (*Series, error) {
	raw = trimBOM(raw)
	cols, err := parseColumns(source, raw, 2)
	if err != nil {
		return nil, err
	}

	return &Series{
		x:        cols[0],
		y:        cols[1],
		source:   source,
		checksum: hash.Sum(raw),
	}, nil
}

// readFile loads path, decompressing it when the name carries a
// compression suffix.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	codec := compress.ForPath(path)
	r, err := codec.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return buf.Bytes(), nil
}

// parseColumns parses raw rows into columns. A width of 0 takes the width of
// the first data row.
func parseColumns(source string, raw []byte, width int) ([][]float64, error) {
	var cols [][]float64
	first := true
	lineNo := 0

	sc := bufio.NewScanner(bytes.NewReader(trimBOM(raw)))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			if first && isHeader(line) {
				first = false
				continue
			}

			return nil, fmt.Errorf("%s:%d: %w: %v", source, lineNo, ErrMalformedRow, err)
		}
		first = false

		if width == 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%s:%d: %w: want %d fields, got %d", source, lineNo, ErrMalformedRow, width, len(row))
		}
		if cols == nil {
			cols = make([][]float64, width)
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	if cols == nil {
		return nil, fmt.Errorf("%s: %w", source, ErrNoData)
	}

	return cols, nil
}

// parseRow splits a comma separated line into numbers.
func parseRow(line string) ([]float64, error) {
	fields := strings.Split(line, ",")
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		row[i] = v
	}

	return row, nil
}

func isHeader(line string) bool {
	return strings.IndexFunc(line, unicode.IsLetter) >= 0
}

var utf8BOM = []byte("\ufeff")

// trimBOM drops the byte order mark some spreadsheet exports put before the
// first line.
func trimBOM(raw []byte) []byte {
	return bytes.TrimPrefix(raw, utf8BOM)
}
