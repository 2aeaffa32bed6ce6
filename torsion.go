// Package torsion reduces torsion-pendulum measurements into torsion
// coefficients, shear moduli and moments of inertia, with first-order
// propagated uncertainties.
//
// # Core Features
//
//   - Straight-line fit with a confidence-scaled slope error
//   - Uncertain values with propagated arithmetic and report formatting
//   - CSV input, optionally zstd/s2/lz4 compressed, with content checksums
//   - Create-only CSV and LaTeX tables and SVG error-bar plots
//   - Whole experiments described by TOML files
//
// # Basic Usage
//
// Fitting a torsion trial:
//
//	import "github.com/arloliu/torsion"
//
//	k, err := torsion.FitTrial("data/trial1.csv", 0.15, format.AngleDegrees)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(k) // e.g. "0.00105 ± 0.00002"
//
// Propagating uncertainty by hand:
//
//	d := torsion.NewValue(1.0e-3, 1e-5)
//	l := torsion.NewValue(0.5, 1e-3)
//	g, err := physics.ShearModulus(k, l, d)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression,
// uncertain, dataset and physics packages for the most common use cases.
// Use those packages directly for fit options, table output and plots, and
// the experiment package to run a whole configured experiment.
package torsion

import (
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/physics"
	"github.com/arloliu/torsion/regression"
	"github.com/arloliu/torsion/uncertain"
)

// FitWithError fits y against x and returns the slope with its error scaled
// by the default multiplier of 2.
//
// Parameters:
//   - x: independent variable samples
//   - y: dependent variable samples, same length as x, at least 3 samples
//
// Returns:
//   - uncertain.Value: slope with its error
//   - error: see regression.FitWithError
func FitWithError(x, y []float64) (uncertain.Value, error) {
	fit, err := regression.FitWithError(x, y)
	if err != nil {
		return uncertain.Value{}, err
	}

	return fit.Value(), nil
}

// NewValue creates an uncertain value from a nominal value and its absolute
// error. The sign of stddev is ignored.
func NewValue(nominal, stddev float64) uncertain.Value {
	return uncertain.WithAbsoluteError(nominal, stddev)
}

// FitTrial reads a force/angle file and returns the torsion coefficient
// (N·m/rad) for forces applied at the given lever arm in meters.
func FitTrial(path string, arm float64, angles format.AngleUnit) (uncertain.Value, error) {
	s, err := dataset.ReadSeries(path)
	if err != nil {
		return uncertain.Value{}, err
	}

	rad, err := physics.ToRadians(s.Y(), angles)
	if err != nil {
		return uncertain.Value{}, err
	}

	fit, err := regression.FitWithError(rad, physics.Torques(s.X(), unit.Length(arm)))
	if err != nil {
		return uncertain.Value{}, fmt.Errorf("%s: %w", path, err)
	}

	return physics.TorsionCoefficient(fit), nil
}
