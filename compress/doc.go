// Package compress provides stream codecs for compressed measurement and
// report files.
//
// Input CSV files and written tables may carry a compression suffix
// (".zst", ".s2", ".lz4"). The dataset reader and the table writer select a
// codec from that suffix and stream through it, so callers never deal with
// compressed bytes directly.
//
// # Supported Algorithms
//
//   - None: files are read and written as-is
//   - Zstd: Zstandard frames (klauspost/compress, or valyala/gozstd when built
//     with the gozstd tag and cgo enabled)
//   - S2: S2 stream format (klauspost/compress/s2)
//   - LZ4: LZ4 frame format (pierrec/lz4/v4)
//
// # Usage
//
//	codec := compress.ForPath("data/trial1.csv.zst")
//	r, err := codec.NewReader(f)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// Readers and writers returned by a codec must be closed. Closing a writer
// flushes the final frame but never closes the underlying io.Writer.
package compress
