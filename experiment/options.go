package experiment

import (
	"log/slog"

	"github.com/arloliu/torsion/internal/options"
)

type runConfig struct {
	logger    *slog.Logger
	outputDir string
	noOutput  bool
}

// RunOption configures Run.
type RunOption = options.Option[*runConfig]

// WithLogger sets the logger used for progress and warnings. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) RunOption {
	return options.NoError(func(c *runConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithOutputDir overrides the configured output directory.
func WithOutputDir(dir string) RunOption {
	return options.NoError(func(c *runConfig) {
		c.outputDir = dir
	})
}

// WithoutOutput skips writing tables and plots.
func WithoutOutput() RunOption {
	return options.NoError(func(c *runConfig) {
		c.noOutput = true
	})
}
