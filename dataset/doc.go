// Package dataset reads measurement series from CSV files.
//
// Rows hold comma separated numbers; spaces around the commas are ignored
// and blank lines are skipped. A first line that contains letters and does
// not parse as numbers is treated as a header and dropped.
//
// # Layouts
//
// Two layouts are supported:
//
//   - One file per trial, selected by index through a printf pattern
//     (TrialPath). Each file is read with ReadSeries or ReadColumns.
//   - A combined file where every trial follows a marker line and ends at
//     the next blank line (ReadBlocks).
//
// # Compression
//
// Files ending in ".zst", ".s2" or ".lz4" are decompressed transparently.
// The checksum of a Series is computed over the decompressed bytes, so a
// compressed copy of a file reports the same checksum as the original.
//
// # Errors
//
// Unparsable rows wrap ErrMalformedRow and carry the source name and the
// 1-based line number. A file without data rows returns ErrNoData.
package dataset
