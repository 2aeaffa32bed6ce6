//go:build gozstd && cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader returns a reader decoding the zstd frames in r.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{r: gozstd.NewReader(r)}, nil
}

// NewWriter returns a writer encoding zstd frames into w.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{w: gozstd.NewWriterLevel(w, 3)}, nil
}

type gozstdReader struct {
	r *gozstd.Reader
}

func (g *gozstdReader) Read(p []byte) (int, error) {
	return g.r.Read(p)
}

func (g *gozstdReader) Close() error {
	g.r.Release()
	return nil
}

type gozstdWriter struct {
	w *gozstd.Writer
}

func (g *gozstdWriter) Write(p []byte) (int, error) {
	return g.w.Write(p)
}

func (g *gozstdWriter) Close() error {
	err := g.w.Close()
	g.w.Release()

	return err
}
