//go:build !(gozstd && cgo)

package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders. The decoder is designed to run
// without allocations after a warmup, so keeping them around pays off when a
// report reads many trial files.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// NewReader returns a reader decoding the zstd frames in r using a pooled
// decoder. The decoder goes back to the pool on Close.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := decoder.Reset(r); err != nil {
		zstdDecoderPool.Put(decoder)
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return &pooledZstdReader{decoder: decoder}, nil
}

// NewWriter returns a writer encoding zstd frames into w.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return encoder, nil
}

type pooledZstdReader struct {
	decoder *zstd.Decoder
}

func (r *pooledZstdReader) Read(p []byte) (int, error) {
	if r.decoder == nil {
		return 0, io.ErrClosedPipe
	}

	return r.decoder.Read(p)
}

func (r *pooledZstdReader) Close() error {
	if r.decoder == nil {
		return nil
	}
	// drop the reference to the source before pooling
	_ = r.decoder.Reset(nil)
	zstdDecoderPool.Put(r.decoder)
	r.decoder = nil

	return nil
}
