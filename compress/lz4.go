package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/torsion/format"
)

// LZ4Codec streams data in the LZ4 frame format, which is what the lz4
// command line tool produces.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

// NewReader returns a reader decoding the LZ4 frames in r.
func (c LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// NewWriter returns a writer encoding LZ4 frames into w.
func (c LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}
