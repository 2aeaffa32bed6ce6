package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/torsion/format"
)

// S2Codec streams data in the S2 stream format.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Type returns format.CompressionS2.
func (c S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

// NewReader returns a reader decoding the S2 stream in r.
func (c S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

// NewWriter returns a writer encoding an S2 stream into w.
func (c S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
