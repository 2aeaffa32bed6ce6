// Package table renders result tables as CSV or LaTeX and writes them to
// report files.
//
// A Table is built from equally long columns:
//
//	t, err := table.New(
//	    table.Ints("trial", []int{1, 2}),
//	    table.Values("k", ks),
//	)
//	fmt.Println(t.LaTeX(table.WithRowNumbers()))
//
// Writers never overwrite: WriteCSV and WriteLaTeX create the target file
// exclusively and fail with ErrAlreadyExists when it is present. The target
// name must end in the format's extension, optionally followed by a
// compression suffix (".csv.zst", ".tex.lz4").
package table
