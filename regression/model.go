package regression

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Model represents a fitted straight line with goodness-of-fit metadata.
type Model struct {
	// Type is the model type (linear, proportional).
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4g, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// FitModel fits a straight line of the given type by least squares.
// It shares the input checks of FitWithError.
func FitModel(x, y []float64, modelType ModelType) (*Model, error) {
	n, err := validateSamples(x, y)
	if err != nil {
		return nil, err
	}

	var estimator Estimator
	var formula string
	switch modelType {
	case ModelTypeLinear:
		a, b := stat.LinearRegression(x, y, nil, false)
		estimator = NewLinearEstimator(a, b)
		formula = fmt.Sprintf("y = %.4g + %.4g·x", a, b)
	case ModelTypeProportional:
		_, b := stat.LinearRegression(x, y, nil, true)
		estimator = NewProportionalEstimator(b)
		formula = fmt.Sprintf("y = %.4g·x", b)
	default:
		return nil, fmt.Errorf("unsupported model type: %s", modelType)
	}

	predicted := make([]float64, n)
	for i := range n {
		predicted[i] = estimator.Estimate(x[i])
	}

	return &Model{
		Type:         modelType,
		Coefficients: append([]float64(nil), estimator.Coefficients()...),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      formula,
		Estimator:    estimator,
	}, nil
}
