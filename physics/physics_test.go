package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/regression"
	"github.com/arloliu/torsion/uncertain"
)

func TestShearModulus(t *testing.T) {
	k := uncertain.MustNew(0.01, 0.0002)    // N·m/rad, 2%
	l := uncertain.MustNew(0.5, 0.005)      // m, 1%
	d := uncertain.MustNew(0.001, 0.000005) // m, 0.5%

	g, err := ShearModulus(k, l, d)
	require.NoError(t, err)

	expected := 32 * 0.01 * 0.5 / (math.Pi * math.Pow(0.001, 4))
	require.InDelta(t, expected, g.Nominal(), expected*1e-12)

	// relative errors: 2%, 1%, 4·0.5% in quadrature
	rel := math.Sqrt(0.02*0.02 + 0.01*0.01 + 0.02*0.02)
	require.InDelta(t, rel, g.RelativeError(), 1e-9)

	gpa := Gigapascals(g)
	require.InDelta(t, expected/1e9, gpa.Nominal(), 1e-9)
	require.InDelta(t, rel, gpa.RelativeError(), 1e-9)

	_, err = ShearModulus(k, l, uncertain.Exact(0))
	require.ErrorIs(t, err, uncertain.ErrDivisionByZero)
}

func TestTorsionCoefficient(t *testing.T) {
	fit, err := regression.FitWithError([]float64{0.1, 0.2, 0.3, 0.4}, []float64{0.0011, 0.0019, 0.0031, 0.0039})
	require.NoError(t, err)

	k := TorsionCoefficient(fit)
	require.Equal(t, fit.Slope, k.Nominal())
	require.Equal(t, fit.SlopeError, k.StdDev())
}

func TestInertia(t *testing.T) {
	// T² = 4π²·I/k; with I = 0.002 kg·m² and k = 0.05 N·m/rad
	const inertia, k = 0.002, 0.05
	period := 2 * math.Pi * math.Sqrt(inertia/k)

	fromPeriod, err := InertiaFromPeriod(uncertain.MustNew(period, 0.01), uncertain.MustNew(k, 0.001))
	require.NoError(t, err)
	require.InDelta(t, inertia, fromPeriod.Nominal(), 1e-12)
	require.InDelta(t, math.Hypot(2*0.01/period, 0.001/k), fromPeriod.RelativeError(), 1e-9)

	fromSlope := InertiaFromSlope(uncertain.MustNew(4*math.Pi*math.Pi*inertia, 0.004))
	require.InDelta(t, inertia, fromSlope.Nominal(), 1e-12)
	require.InDelta(t, 0.004/(4*math.Pi*math.Pi), fromSlope.StdDev(), 1e-12)

	predicted, err := Period(uncertain.Exact(inertia), uncertain.Exact(k))
	require.NoError(t, err)
	require.InDelta(t, period, predicted.Nominal(), 1e-12)

	_, err = Period(uncertain.Exact(inertia), uncertain.Exact(0))
	require.ErrorIs(t, err, uncertain.ErrDivisionByZero)
}

func TestCompare(t *testing.T) {
	c, err := Compare(uncertain.MustNew(1.05, 0.03), uncertain.MustNew(1.0, 0.04))
	require.NoError(t, err)
	require.InDelta(t, 0.05, c.Absolute.Nominal(), 1e-12)
	require.InDelta(t, 0.05, c.Absolute.StdDev(), 1e-12)
	require.InDelta(t, 0.05, c.Relative, 1e-12)
	require.True(t, c.Consistent())
	require.Equal(t, "Δ = 0.05 ± 0.05 (5.00%)", c.String())

	c, err = Compare(uncertain.MustNew(2, 0.01), uncertain.MustNew(1, 0.01))
	require.NoError(t, err)
	require.False(t, c.Consistent())

	_, err = Compare(uncertain.Exact(1), uncertain.Exact(0))
	require.ErrorIs(t, err, uncertain.ErrDivisionByZero)
}

func TestInverse(t *testing.T) {
	inv, err := Inverse(uncertain.MustNew(4, 0.2))
	require.NoError(t, err)
	require.InDelta(t, 0.25, inv.Nominal(), 1e-12)
	require.InDelta(t, 0.05, inv.RelativeError(), 1e-12)
}

func TestTorquesAndAngles(t *testing.T) {
	torques := Torques([]float64{1, 2}, unit.Length(0.15))
	require.InDeltaSlice(t, []float64{0.15, 0.30}, torques, 1e-12)

	rad, err := ToRadians([]float64{180, 90}, format.AngleDegrees)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Pi, math.Pi / 2}, rad, 1e-12)

	rad, err = ToRadians([]float64{1.5}, format.AngleRadians)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5}, rad)

	_, err = ToRadians([]float64{1}, format.AngleUnit(0))
	require.ErrorIs(t, err, ErrUnknownAngleUnit)
}
