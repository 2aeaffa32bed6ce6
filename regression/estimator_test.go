package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimatorImplementations(t *testing.T) {
	tests := []struct {
		name      string
		estimator Estimator
		x         float64
		expected  float64
		nCoeffs   int
	}{
		{"LinearEstimator", NewLinearEstimator(1.0, 2.0), 10.0, 21.0, 2},
		{"ProportionalEstimator", NewProportionalEstimator(0.5), 10.0, 5.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, tt.estimator.Estimate(tt.x), 1e-12)
			require.Len(t, tt.estimator.Coefficients(), tt.nCoeffs)
		})
	}
}

func TestModelTypeString(t *testing.T) {
	require.Equal(t, "linear", ModelTypeLinear.String())
	require.Equal(t, "proportional", ModelTypeProportional.String())
	require.Equal(t, "unknown", ModelType(999).String())

	require.Equal(t, ModelTypeLinear, ModelTypeFromString("LINEAR"))
	require.Equal(t, ModelType(-1), ModelTypeFromString("hyperbolic"))
}

func TestFitModel(t *testing.T) {
	x := []float64{0.1, 0.2, 0.3, 0.4}
	y := []float64{0.3, 0.6, 0.9, 1.2}

	prop, err := FitModel(x, y, ModelTypeProportional)
	require.NoError(t, err)
	require.InDelta(t, 3.0, prop.Coefficients[0], 1e-12)
	require.InDelta(t, 1.0, prop.RSquared, 1e-12)
	require.InDelta(t, 0.0, prop.RMSE, 1e-12)
	require.Contains(t, prop.String(), "proportional")

	lin, err := FitModel(noisyX, noisyY, ModelTypeLinear)
	require.NoError(t, err)
	require.InDelta(t, 0.05, lin.Coefficients[0], 1e-9)
	require.InDelta(t, 1.99, lin.Coefficients[1], 1e-9)

	_, err = FitModel(x, y, ModelType(42))
	require.Error(t, err)

	_, err = FitModel(x[:2], y[:2], ModelTypeLinear)
	require.ErrorIs(t, err, ErrDegenerateInput)
}
