package compress

import (
	"io"

	"github.com/arloliu/torsion/format"
)

// NoOpCodec passes data through unchanged.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that performs no compression.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Type returns format.CompressionNone.
func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// NewReader returns r wrapped with a no-op Close.
func (c NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// NewWriter returns w wrapped with a no-op Close.
func (c NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
