package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/torsion/internal/options"
	"github.com/arloliu/torsion/uncertain"
)

var (
	// ErrShapeMismatch is returned when x and y have different lengths.
	ErrShapeMismatch = errors.New("x and y have different lengths")
	// ErrDegenerateInput is returned for too few samples, zero x-variance or
	// non-finite samples.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrNegativeVariance is returned when the slope error formula would take
	// the square root of a negative number.
	ErrNegativeVariance = errors.New("negative slope variance")
	// ErrInvalidConfidence is returned for a non-positive multiplier or a
	// confidence level outside (0, 1).
	ErrInvalidConfidence = errors.New("invalid confidence")
)

// radicandTolerance is the relative slack, against Dy/Dx, within which a
// negative radicand is treated as rounding noise on exactly linear data.
const radicandTolerance = 1e-12

// FitResult is the outcome of FitWithError.
type FitResult struct {
	// Slope is the OLS slope of y on x.
	Slope float64
	// SlopeError is the confidence-scaled slope error (always >= 0).
	SlopeError float64
	// Intercept is the OLS intercept.
	Intercept float64
	// RSquared is the coefficient of determination of the linear fit.
	RSquared float64
	// RMSE is the root mean square of the residuals.
	RMSE float64
	// N is the number of samples.
	N int
	// Confidence is the multiplier that was applied to the standard error.
	Confidence float64
}

// Value returns the slope as a propagated-uncertainty value.
func (r *FitResult) Value() uncertain.Value {
	return uncertain.WithAbsoluteError(r.Slope, r.SlopeError)
}

// Estimator returns the fitted line y = Intercept + Slope·x.
func (r *FitResult) Estimator() *LinearEstimator {
	return NewLinearEstimator(r.Intercept, r.Slope)
}

// String returns a human-readable summary of the fit.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{Slope: %s, Intercept: %.4g, R²: %.4f, N: %d, k: %.3g}",
		r.Value(), r.Intercept, r.RSquared, r.N, r.Confidence)
}

// FitWithError fits y = a + b·x by ordinary least squares and returns b with
// its confidence-scaled error.
//
// Parameters:
//   - x: independent variable samples
//   - y: dependent variable samples, same length as x
//   - opts: WithConfidence or WithStudentT
//
// Returns:
//   - *FitResult: slope, slope error, intercept and goodness-of-fit metrics
//   - error: ErrShapeMismatch, ErrDegenerateInput, ErrNegativeVariance or
//     ErrInvalidConfidence
func FitWithError(x, y []float64, opts ...FitOption) (*FitResult, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n, err := validateSamples(x, y)
	if err != nil {
		return nil, err
	}

	dx := stat.Variance(x, nil)
	if dx == 0 {
		return nil, fmt.Errorf("%w: all x values are equal", ErrDegenerateInput)
	}
	dy := stat.Variance(y, nil)

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	k := cfg.Confidence
	if cfg.StudentTLevel > 0 {
		k = studentTQuantile(n, cfg.StudentTLevel)
	}

	slopeErr, err := slopeError(n, dx, dy, slope, k)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, n)
	for i := range n {
		predicted[i] = intercept + slope*x[i]
	}

	return &FitResult{
		Slope:      slope,
		SlopeError: slopeErr,
		Intercept:  intercept,
		RSquared:   stat.RSquared(x, y, nil, intercept, slope),
		RMSE:       calculateRMSE(y, predicted),
		N:          n,
		Confidence: k,
	}, nil
}

// validateSamples checks the preconditions shared by all fits and returns n.
func validateSamples(x, y []float64) (int, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d x values vs %d y values", ErrShapeMismatch, len(x), len(y))
	}

	n := len(x)
	if n <= 2 {
		return 0, fmt.Errorf("%w: need more than 2 samples, got %d", ErrDegenerateInput, n)
	}

	for i := range n {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return 0, fmt.Errorf("%w: non-finite sample at index %d", ErrDegenerateInput, i)
		}
	}

	return n, nil
}

// slopeError evaluates k·√((Dy/Dx - slope²)/(n-2)).
func slopeError(n int, dx, dy, slope, k float64) (float64, error) {
	if dx == 0 || n <= 2 {
		return 0, ErrDegenerateInput
	}

	ratio := dy / dx
	diff := ratio - slope*slope
	if diff < 0 {
		if -diff > radicandTolerance*math.Abs(ratio) {
			return 0, fmt.Errorf("%w: Dy/Dx - slope² = %g", ErrNegativeVariance, diff)
		}
		diff = 0
	}

	return k * math.Sqrt(diff/float64(n-2)), nil
}

// studentTQuantile returns the two-sided Student-t multiplier for n-2 degrees of freedom.
func studentTQuantile(n int, level float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return dist.Quantile((1 + level) / 2)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// calculateRSquared calculates the coefficient of determination (R²) as
// 1 - SS_res/SS_tot. It returns 0 when the observations are constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}
