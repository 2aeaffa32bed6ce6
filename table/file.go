package table

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/torsion/compress"
	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/internal/pool"
)

var (
	// ErrPathExtension is returned when the target file name does not end in
	// the extension of the written format.
	ErrPathExtension = errors.New("path extension does not match table format")
	// ErrAlreadyExists is returned when the target file exists. Errors
	// wrapping it also match fs.ErrExist.
	ErrAlreadyExists = errors.New("table file already exists")
)

// WriteCSV writes the table as CSV to a new file at path.
func (t *Table) WriteCSV(path string, opts ...Option) error {
	return t.Write(path, format.TableCSV, opts...)
}

// WriteLaTeX writes the table as a LaTeX tabular to a new file at path.
func (t *Table) WriteLaTeX(path string, opts ...Option) error {
	return t.Write(path, format.TableLaTeX, opts...)
}

// Write renders the table in format f into a new file.
//
// The compression is taken from WithCompression, or else from the
// compression suffix of path. The file actually created is path without its
// compression suffix plus the suffix of the chosen compression.
//
// Returns:
//   - ErrPathExtension if the name (without compression suffix) does not end
//     in f.Extension()
//   - ErrAlreadyExists (and fs.ErrExist) if the target file is present
func (t *Table) Write(path string, f format.TableFormat, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	target, codec, err := resolveTarget(path, f, cfg.compression)
	if err != nil {
		return err
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	if err := t.render(buf, f, cfg); err != nil {
		return err
	}

	return createFile(target, codec, buf)
}

// Target returns the file name Write would create for path, format f and
// the given options.
func Target(path string, f format.TableFormat, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	target, _, err := resolveTarget(path, f, cfg.compression)

	return target, err
}

func resolveTarget(path string, f format.TableFormat, ct format.CompressionType) (string, compress.Codec, error) {
	base := format.TrimCompression(path)
	if f.Extension() == "" || !strings.EqualFold(filepath.Ext(base), f.Extension()) {
		return "", nil, fmt.Errorf("%w: %q is not %s", ErrPathExtension, path, f.Extension())
	}

	if ct == 0 {
		ct = format.CompressionFromPath(path)
	}
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return "", nil, err
	}

	return base + ct.Suffix(), codec, nil
}

func createFile(target string, codec compress.Codec, buf *pool.ByteBuffer) (err error) {
	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}

		return fmt.Errorf("create table file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(target)
		}
	}()

	w, err := codec.NewWriter(file)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	return nil
}

// ReadCSV reads a numeric CSV file, skipping an alphabetic header row, and
// returns its columns. Compressed files are decompressed by suffix.
func ReadCSV(path string) ([][]float64, error) {
	return dataset.ReadColumns(path)
}
