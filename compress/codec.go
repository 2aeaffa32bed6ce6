package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/torsion/format"
)

// Codec wraps readers and writers with one compression algorithm.
type Codec interface {
	// Type returns the compression type implemented by the codec.
	Type() format.CompressionType
	// NewReader returns a reader that decompresses r.
	NewReader(r io.Reader) (io.ReadCloser, error)
	// NewWriter returns a writer that compresses into w. Close flushes the
	// stream and leaves w open.
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// ForPath returns the built-in codec matching the compression suffix of path.
// Paths without a known suffix get the no-op codec.
func ForPath(path string) Codec {
	return builtinCodecs[format.CompressionFromPath(path)]
}

// Compress compresses data in memory using codec.
func Compress(codec Codec, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := codec.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s compression failed: %w", codec.Type(), err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s compression failed: %w", codec.Type(), err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses data in memory using codec.
func Decompress(codec Codec, data []byte) ([]byte, error) {
	r, err := codec.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", codec.Type(), err)
	}

	return out, nil
}
