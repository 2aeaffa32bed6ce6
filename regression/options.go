package regression

import (
	"fmt"

	"github.com/arloliu/torsion/internal/options"
)

// DefaultConfidence is the default multiplier applied to the slope error.
const DefaultConfidence = 2.0

// FitConfig holds the settings used by FitWithError.
type FitConfig struct {
	// Confidence multiplies the slope standard error.
	Confidence float64
	// StudentTLevel, when non-zero, replaces Confidence with the two-sided
	// Student-t quantile for n-2 degrees of freedom at this level (e.g. 0.95).
	StudentTLevel float64
}

func defaultFitConfig() FitConfig {
	return FitConfig{Confidence: DefaultConfidence}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithConfidence sets the confidence multiplier. It must be positive.
func WithConfidence(k float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if !(k > 0) {
			return fmt.Errorf("%w: %g", ErrInvalidConfidence, k)
		}
		cfg.Confidence = k
		cfg.StudentTLevel = 0

		return nil
	})
}

// WithStudentT derives the multiplier from the Student-t distribution with
// n-2 degrees of freedom at the given two-sided confidence level in (0, 1).
func WithStudentT(level float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if !(level > 0 && level < 1) {
			return fmt.Errorf("%w: level %g outside (0, 1)", ErrInvalidConfidence, level)
		}
		cfg.StudentTLevel = level

		return nil
	})
}
