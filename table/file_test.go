package table

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/torsion/compress"
	"github.com/arloliu/torsion/format"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	x := []float64{0.1, 0.2, 0.30000000000000004}
	y := []float64{1e-3, -2.5, 3}

	tbl, err := New(Floats("x", x), Floats("y", y))
	require.NoError(t, err)

	path := filepath.Join(dir, "out.csv")
	require.NoError(t, tbl.WriteCSV(path))

	cols, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.InDeltaSlice(t, x, cols[0], 1e-15)
	require.InDeltaSlice(t, y, cols[1], 1e-15)

	// row numbers become an extra leading column
	numbered := filepath.Join(dir, "numbered.csv")
	require.NoError(t, tbl.WriteCSV(numbered, WithRowNumbers()))
	cols, err = ReadCSV(numbered)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, cols[0])
}

func TestWrite_CreateOnly(t *testing.T) {
	dir := t.TempDir()
	tbl := sampleTable(t)

	path := filepath.Join(dir, "k.tex")
	require.NoError(t, tbl.WriteLaTeX(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, tbl.LaTeX(), string(data))

	err = tbl.WriteLaTeX(path, WithRowNumbers())
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.ErrorIs(t, err, fs.ErrExist)

	// the existing file is left untouched
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, tbl.LaTeX(), string(data))
}

func TestWrite_PathExtension(t *testing.T) {
	dir := t.TempDir()
	tbl := sampleTable(t)

	tests := []struct {
		name string
		path string
		f    format.TableFormat
	}{
		{"csv to tex", "k.tex", format.TableCSV},
		{"tex to csv", "k.csv", format.TableLaTeX},
		{"no extension", "k", format.TableCSV},
		{"compressed wrong", "k.tex.zst", format.TableCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.Write(filepath.Join(dir, tt.path), tt.f)
			require.ErrorIs(t, err, ErrPathExtension)

			_, statErr := os.Stat(filepath.Join(dir, tt.path))
			require.ErrorIs(t, statErr, fs.ErrNotExist)
		})
	}
}

func TestWrite_Compressed(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			dir := t.TempDir()
			tbl := sampleTable(t)

			path := filepath.Join(dir, "k.csv")
			target, err := Target(path, format.TableCSV, WithCompression(ct))
			require.NoError(t, err)
			require.Equal(t, path+ct.Suffix(), target)

			require.NoError(t, tbl.WriteCSV(path, WithCompression(ct)))

			raw, err := os.ReadFile(target)
			require.NoError(t, err)
			codec, err := compress.GetCodec(ct)
			require.NoError(t, err)
			plain, err := compress.Decompress(codec, raw)
			require.NoError(t, err)
			require.Equal(t, tbl.CSV(), string(plain))

			cols, err := ReadCSV(target)
			require.NoError(t, err)
			require.Equal(t, []float64{1, 5, 10}, cols[0])

			require.ErrorIs(t, tbl.WriteCSV(target), ErrAlreadyExists)
		})
	}
}

func TestWrite_CompressionFromSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "k.csv.lz4")

	require.NoError(t, sampleTable(t).WriteCSV(path))

	cols, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 12}, cols[2])
}

func TestWrite_InvalidCompression(t *testing.T) {
	err := sampleTable(t).WriteCSV(filepath.Join(t.TempDir(), "k.csv"), WithCompression(format.CompressionType(0)))
	require.Error(t, err)
}
