package regression

import "strings"

// ModelType represents the type of straight-line model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = a + b·x
	ModelTypeLinear ModelType = iota
	// ModelTypeProportional represents the proportional model: y = b·x
	ModelTypeProportional
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:       "linear",
	ModelTypeProportional: "proportional",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	needle := strings.ToLower(name)
	for mt, n := range modelTypeNames {
		if n == needle {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator predicts y for a given x from fitted coefficients.
type Estimator interface {
	// Estimate calculates y for the given x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients: [a, b] for the linear
	// model and [b] for the proportional model.
	Coefficients() []float64
}

// LinearEstimator implements y = a + b·x
type LinearEstimator struct {
	a, b   float64
	coeffs []float64 // cached to avoid allocations
}

// NewLinearEstimator creates a new linear estimator with intercept a and slope b.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Estimate calculates a + b·x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.a + l.b*x
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns the model coefficients [a, b].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// ProportionalEstimator implements y = b·x
type ProportionalEstimator struct {
	b      float64
	coeffs []float64
}

// NewProportionalEstimator creates a new proportional estimator with slope b.
func NewProportionalEstimator(b float64) *ProportionalEstimator {
	return &ProportionalEstimator{
		b:      b,
		coeffs: make([]float64, 1),
	}
}

// Estimate calculates b·x.
func (p *ProportionalEstimator) Estimate(x float64) float64 {
	return p.b * x
}

// Type returns the model type.
func (p *ProportionalEstimator) Type() ModelType {
	return ModelTypeProportional
}

// Coefficients returns the model coefficients [b].
func (p *ProportionalEstimator) Coefficients() []float64 {
	p.coeffs[0] = p.b
	return p.coeffs
}
