package table

import (
	"strconv"

	"github.com/arloliu/torsion/uncertain"
)

// Column is a named list of cells. Each cell has a CSV and a LaTeX rendering,
// which differ only for uncertain values.
type Column struct {
	name  string
	csv   []string
	latex []string
}

// Name returns the column name, empty when the default name is used.
func (c Column) Name() string { return c.name }

// Len returns the number of cells.
func (c Column) Len() int { return len(c.csv) }

// Floats builds a column from float values using the shortest representation
// that round-trips.
func Floats(name string, values []float64) Column {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return Column{name: name, csv: cells, latex: cells}
}

// Ints builds a column from integers.
func Ints(name string, values []int) Column {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = strconv.Itoa(v)
	}

	return Column{name: name, csv: cells, latex: cells}
}

// Strings builds a column from preformatted cells.
func Strings(name string, values []string) Column {
	cells := make([]string, len(values))
	copy(cells, values)

	return Column{name: name, csv: cells, latex: cells}
}

// Values builds a column from uncertain values: "x ± e" in CSV and
// "$x \pm e$" in LaTeX.
func Values(name string, values []uncertain.Value) Column {
	csv := make([]string, len(values))
	latex := make([]string, len(values))
	for i, v := range values {
		csv[i] = v.String()
		latex[i] = v.LaTeX()
	}

	return Column{name: name, csv: csv, latex: latex}
}

func rowNumbers(n int) Column {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}

	return Ints(RowNumberHeader, values)
}
