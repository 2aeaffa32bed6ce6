package table

import (
	"fmt"

	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/internal/options"
)

// RowNumberHeader names the column added by WithRowNumbers.
const RowNumberHeader = "№"

type config struct {
	rowNumbers  bool
	compression format.CompressionType
}

// Option configures rendering and writing of a table.
type Option = options.Option[*config]

// WithRowNumbers prepends a "№" column numbering rows from 1.
func WithRowNumbers() Option {
	return options.NoError(func(c *config) {
		c.rowNumbers = true
	})
}

// WithCompression compresses the written file and appends the compression
// suffix to its name. Rendering to a string ignores it.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if ct.Suffix() == "" && ct != format.CompressionNone {
			return fmt.Errorf("invalid table compression: %s", ct)
		}
		c.compression = ct

		return nil
	})
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
