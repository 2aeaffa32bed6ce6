package experiment

import (
	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/uncertain"
)

// Trial holds the measured geometry and assumed errors of one wire.
type Trial struct {
	Index int
	// Input is the per-trial data file; empty when data comes from blocks.
	Input string

	Diameter      unit.Length
	DiameterError unit.Length
	Length        unit.Length
	LengthError   unit.Length

	// ForceError is the assumed error of every force reading, N.
	ForceError float64
	// AngleError is the assumed error of every angle reading, in the
	// experiment's angle unit.
	AngleError float64

	// Period is the oscillation period in seconds; zero when not measured.
	Period      float64
	PeriodError float64
}

// DiameterValue returns the wire diameter with its error.
func (t Trial) DiameterValue() uncertain.Value {
	return uncertain.WithAbsoluteError(float64(t.Diameter), float64(t.DiameterError))
}

// LengthValue returns the wire length with its error.
func (t Trial) LengthValue() uncertain.Value {
	return uncertain.WithAbsoluteError(float64(t.Length), float64(t.LengthError))
}

// PeriodValue returns the oscillation period with its error, and false when
// the trial has no period.
func (t Trial) PeriodValue() (uncertain.Value, bool) {
	if t.Period <= 0 {
		return uncertain.Value{}, false
	}

	return uncertain.WithAbsoluteError(t.Period, t.PeriodError), true
}
