package table

import (
	"errors"
	"fmt"

	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/internal/pool"
)

var (
	// ErrColumnLength is returned when columns have different lengths.
	ErrColumnLength = errors.New("columns have different lengths")
	// ErrEmptyTable is returned when a table has no columns.
	ErrEmptyTable = errors.New("table has no columns")
)

// Table is an immutable list of equally long columns.
type Table struct {
	columns []Column
	names   []string
	rows    int
}

// New builds a table from columns. Unnamed columns are called col0, col1, ...
// by position.
func New(columns ...Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyTable
	}

	rows := columns[0].Len()
	names := make([]string, len(columns))
	for i, c := range columns {
		if c.Len() != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrColumnLength, i, c.Len(), rows)
		}
		names[i] = c.name
		if names[i] == "" {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}

	return &Table{
		columns: append([]Column(nil), columns...),
		names:   names,
		rows:    rows,
	}, nil
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// Names returns the column names.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// String renders the table as CSV.
func (t *Table) String() string { return t.CSV() }

// CSV renders the table as comma separated values with a header row.
// Rows are separated by newlines; there is no trailing newline.
func (t *Table) CSV(opts ...Option) string {
	s, _ := t.Render(format.TableCSV, opts...)
	return s
}

// LaTeX renders the table as a LaTeX tabular environment with every cell
// boxed by vertical rules and \hline.
func (t *Table) LaTeX(opts ...Option) string {
	s, _ := t.Render(format.TableLaTeX, opts...)
	return s
}

// Render renders the table in format f.
func (t *Table) Render(f format.TableFormat, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	if err := t.render(buf, f, cfg); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (t *Table) render(buf *pool.ByteBuffer, f format.TableFormat, cfg *config) error {
	columns, names := t.columns, t.names
	if cfg.rowNumbers {
		columns = append([]Column{rowNumbers(t.rows)}, columns...)
		names = append([]string{RowNumberHeader}, names...)
	}

	switch f {
	case format.TableCSV:
		renderCSV(buf, columns, names, t.rows)
	case format.TableLaTeX:
		renderLaTeX(buf, columns, names, t.rows)
	default:
		return fmt.Errorf("unsupported table format: %s", f)
	}

	return nil
}

func renderCSV(buf *pool.ByteBuffer, columns []Column, names []string, rows int) {
	writeRow(buf, names, ",")
	for r := range rows {
		_ = buf.WriteByte('\n')
		for i, c := range columns {
			if i > 0 {
				_ = buf.WriteByte(',')
			}
			_, _ = buf.WriteString(c.csv[r])
		}
	}
}

const latexLineEnding = " \\\\ \\hline\n"

func renderLaTeX(buf *pool.ByteBuffer, columns []Column, names []string, rows int) {
	_, _ = buf.WriteString("\\begin{tabular}{|")
	for range columns {
		_, _ = buf.WriteString("c|")
	}
	_, _ = buf.WriteString("}\n\\hline\n")

	writeRow(buf, names, " & ")
	_, _ = buf.WriteString(latexLineEnding)
	for r := range rows {
		for i, c := range columns {
			if i > 0 {
				_, _ = buf.WriteString(" & ")
			}
			_, _ = buf.WriteString(c.latex[r])
		}
		_, _ = buf.WriteString(latexLineEnding)
	}
	_, _ = buf.WriteString("\\end{tabular}")
}

func writeRow(buf *pool.ByteBuffer, cells []string, sep string) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = buf.WriteString(sep)
		}
		_, _ = buf.WriteString(cell)
	}
}
