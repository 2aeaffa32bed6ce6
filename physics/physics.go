// Package physics holds the closed-form formulas of the torsion experiment.
//
// All quantities are SI: lengths in meters, torques in newton-meters, angles
// in radians, periods in seconds. Uncertainty flows through the uncertain
// package, so every result carries a first-order propagated error.
package physics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/regression"
	"github.com/arloliu/torsion/uncertain"
)

// ErrUnknownAngleUnit is returned by ToRadians for an unsupported unit.
var ErrUnknownAngleUnit = errors.New("unknown angle unit")

// fourPiSq is 4π², the constant in T = 2π√(I/k).
const fourPiSq = 4 * math.Pi * math.Pi

// TorsionCoefficient turns a torque-vs-angle fit into k (N·m/rad).
func TorsionCoefficient(fit *regression.FitResult) uncertain.Value {
	return fit.Value()
}

// ShearModulus computes G = 32·k·L / (π·d⁴) in pascals.
func ShearModulus(k, length, diameter uncertain.Value) (uncertain.Value, error) {
	d4, err := diameter.RaisePower(4)
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("diameter⁴: %w", err)
	}

	g, err := k.Multiply(length).Scale(32).Divide(d4.Scale(math.Pi))
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("shear modulus: %w", err)
	}

	return g, nil
}

// InertiaFromSlope recovers the moment of inertia from the slope s of the
// linear relation T² = s·(1/k) + c, where s = 4π²·I.
func InertiaFromSlope(slope uncertain.Value) uncertain.Value {
	return slope.Scale(1 / fourPiSq)
}

// InertiaFromPeriod computes I = k·T²/(4π²) from a single oscillation period
// measured on a wire with torsion coefficient k.
func InertiaFromPeriod(period, k uncertain.Value) (uncertain.Value, error) {
	t2, err := period.RaisePower(2)
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("period²: %w", err)
	}

	return k.Multiply(t2).Scale(1 / fourPiSq), nil
}

// Period predicts T = 2π√(I/k).
func Period(inertia, k uncertain.Value) (uncertain.Value, error) {
	ratio, err := inertia.Divide(k)
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("period: %w", err)
	}

	root, err := ratio.Sqrt()
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("period: %w", err)
	}

	return root.Scale(2 * math.Pi), nil
}

// Inverse returns 1/v, used for the 1/k axis of the period plot.
func Inverse(v uncertain.Value) (uncertain.Value, error) {
	return uncertain.Exact(1).Divide(v)
}

// Comparison is the difference between two estimates of the same quantity.
type Comparison struct {
	// Absolute is a - b with propagated uncertainty.
	Absolute uncertain.Value
	// Relative is |a - b| / |b|.
	Relative float64
}

// Consistent reports whether the estimates agree within the propagated
// uncertainty of their difference.
func (c Comparison) Consistent() bool {
	return math.Abs(c.Absolute.Nominal()) <= c.Absolute.StdDev()
}

// String formats the comparison for logs and reports.
func (c Comparison) String() string {
	return fmt.Sprintf("Δ = %s (%.2f%%)", c.Absolute, c.Relative*100)
}

// Compare reports the absolute and relative difference between estimate a
// and reference b. It fails when b has a zero nominal value.
func Compare(a, b uncertain.Value) (Comparison, error) {
	if b.Nominal() == 0 {
		return Comparison{}, fmt.Errorf("compare: %w", uncertain.ErrDivisionByZero)
	}

	diff := a.Sub(b)

	return Comparison{
		Absolute: diff,
		Relative: math.Abs(diff.Nominal()) / math.Abs(b.Nominal()),
	}, nil
}

// Torques converts applied forces (N) at a lever arm (m) into torques (N·m).
func Torques(forces []float64, arm unit.Length) []float64 {
	out := make([]float64, len(forces))
	for i, f := range forces {
		out[i] = f * float64(arm)
	}

	return out
}

// ToRadians converts angles measured in u into radians.
func ToRadians(angles []float64, u format.AngleUnit) ([]float64, error) {
	var scale float64
	switch u {
	case format.AngleRadians:
		scale = 1
	case format.AngleDegrees:
		scale = math.Pi / 180
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAngleUnit, u)
	}

	out := make([]float64, len(angles))
	for i, a := range angles {
		out[i] = a * scale
	}

	return out, nil
}

// Gigapascals rescales a pressure in pascals to GPa for reporting.
func Gigapascals(p uncertain.Value) uncertain.Value {
	return p.Scale(1 / unit.Giga)
}
