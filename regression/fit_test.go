package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	noisyX = []float64{1, 2, 3, 4, 5}
	noisyY = []float64{2.1, 3.9, 6.2, 7.8, 10.1}
)

// TestFitWithErrorPerfectLine checks that exactly linear data yields the
// true slope and a vanishing error.
func TestFitWithErrorPerfectLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi + 1
	}

	fit, err := FitWithError(x, y)
	require.NoError(t, err)
	require.InDelta(t, 2.0, fit.Slope, 1e-12)
	require.InDelta(t, 1.0, fit.Intercept, 1e-12)
	require.InDelta(t, 0.0, fit.SlopeError, 1e-6)
	require.InDelta(t, 1.0, fit.RSquared, 1e-12)
	require.Equal(t, 5, fit.N)
	require.Equal(t, DefaultConfidence, fit.Confidence)
}

// TestFitWithErrorNoisyLine checks the slope error against a hand computation:
// SS_res = 0.107, Sxx = 10, n = 5.
func TestFitWithErrorNoisyLine(t *testing.T) {
	fit, err := FitWithError(noisyX, noisyY)
	require.NoError(t, err)
	require.InDelta(t, 1.99, fit.Slope, 1e-9)
	require.InDelta(t, 0.05, fit.Intercept, 1e-9)
	require.InDelta(t, 2*math.Sqrt(0.107/30), fit.SlopeError, 1e-9)
	require.InDelta(t, 1-0.107/39.708, fit.RSquared, 1e-9)
	require.InDelta(t, math.Sqrt(0.107/5), fit.RMSE, 1e-9)

	v := fit.Value()
	require.Equal(t, fit.Slope, v.Nominal())
	require.Equal(t, fit.SlopeError, v.StdDev())
}

func TestFitWithErrorConfidence(t *testing.T) {
	base, err := FitWithError(noisyX, noisyY)
	require.NoError(t, err)

	wide, err := FitWithError(noisyX, noisyY, WithConfidence(3))
	require.NoError(t, err)
	require.InDelta(t, base.SlopeError*1.5, wide.SlopeError, 1e-12)
	require.Equal(t, 3.0, wide.Confidence)

	tFit, err := FitWithError(noisyX, noisyY, WithStudentT(0.95))
	require.NoError(t, err)
	require.InDelta(t, 3.1824, tFit.Confidence, 1e-3) // t(0.975, 3 dof)
	require.InDelta(t, base.SlopeError/2*tFit.Confidence, tFit.SlopeError, 1e-12)

	_, err = FitWithError(noisyX, noisyY, WithConfidence(0))
	require.ErrorIs(t, err, ErrInvalidConfidence)

	_, err = FitWithError(noisyX, noisyY, WithConfidence(math.NaN()))
	require.ErrorIs(t, err, ErrInvalidConfidence)

	_, err = FitWithError(noisyX, noisyY, WithStudentT(1))
	require.ErrorIs(t, err, ErrInvalidConfidence)
}

func TestFitWithErrorInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		err  error
	}{
		{"shape mismatch", []float64{1, 2, 3}, []float64{1, 2}, ErrShapeMismatch},
		{"empty", nil, nil, ErrDegenerateInput},
		{"one sample", []float64{1}, []float64{1}, ErrDegenerateInput},
		{"two samples", []float64{1, 2}, []float64{1, 2}, ErrDegenerateInput},
		{"constant x", []float64{3, 3, 3, 3}, []float64{1, 2, 3, 4}, ErrDegenerateInput},
		{"NaN sample", []float64{1, 2, math.NaN()}, []float64{1, 2, 3}, ErrDegenerateInput},
		{"infinite sample", []float64{1, 2, 3}, []float64{1, math.Inf(1), 3}, ErrDegenerateInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitWithError(tt.x, tt.y)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, fit)
		})
	}
}

func TestSlopeError(t *testing.T) {
	t.Run("negative radicand is rejected", func(t *testing.T) {
		_, err := slopeError(5, 1, 1, 2, 2)
		require.ErrorIs(t, err, ErrNegativeVariance)
	})

	t.Run("rounding noise clamps to zero", func(t *testing.T) {
		got, err := slopeError(5, 1, 4, 2.0000000000000004, 2)
		require.NoError(t, err)
		require.Equal(t, 0.0, got)
	})

	t.Run("zero x variance", func(t *testing.T) {
		_, err := slopeError(5, 0, 4, 2, 2)
		require.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("formula", func(t *testing.T) {
		got, err := slopeError(6, 2, 9, 2, 2)
		require.NoError(t, err)
		require.InDelta(t, 2*math.Sqrt((4.5-4)/4), got, 1e-12)
	})
}

func TestFitResultString(t *testing.T) {
	fit, err := FitWithError(noisyX, noisyY)
	require.NoError(t, err)
	require.Contains(t, fit.String(), "Slope: 2.0 ± 0.1")
	require.Contains(t, fit.String(), "N: 5")

	est := fit.Estimator()
	require.InDelta(t, fit.Intercept+fit.Slope*10, est.Estimate(10), 1e-12)
}
