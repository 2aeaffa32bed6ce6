package uncertain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivisionByZero is returned when dividing by a value with zero nominal.
	ErrDivisionByZero = errors.New("division by zero-nominal value")
	// ErrNegativeStdDev is returned when constructing a value with a negative standard deviation.
	ErrNegativeStdDev = errors.New("standard deviation must be non-negative")
	// ErrDomain is returned when an operation has no real result or no finite derivative.
	ErrDomain = errors.New("operation outside its real domain")
)

// Value is a nominal value with a non-negative standard deviation.
// The zero Value is the exact constant 0.
type Value struct {
	nominal float64
	stddev  float64
}

// New creates a Value from a nominal value and a standard deviation.
func New(nominal, stddev float64) (Value, error) {
	if stddev < 0 || math.IsNaN(stddev) {
		return Value{}, fmt.Errorf("%w: got %g", ErrNegativeStdDev, stddev)
	}

	return Value{nominal: nominal, stddev: stddev}, nil
}

// MustNew is like New but panics on invalid input. Intended for constants.
func MustNew(nominal, stddev float64) Value {
	v, err := New(nominal, stddev)
	if err != nil {
		panic(err)
	}

	return v
}

// Exact creates a Value with no uncertainty.
func Exact(x float64) Value {
	return Value{nominal: x}
}

// WithAbsoluteError creates a Value with a fixed absolute error, e.g. the
// resolution of an instrument. The sign of abs is ignored.
func WithAbsoluteError(x, abs float64) Value {
	return Value{nominal: x, stddev: math.Abs(abs)}
}

// WithRelativeError creates a Value whose error is a fraction of its
// magnitude; 0.01 means 1%. The sign of rel is ignored.
func WithRelativeError(x, rel float64) Value {
	return Value{nominal: x, stddev: math.Abs(x * rel)}
}

// Nominal returns the nominal value.
func (v Value) Nominal() float64 { return v.nominal }

// StdDev returns the standard deviation.
func (v Value) StdDev() float64 { return v.stddev }

// IsExact reports whether the value carries no uncertainty.
func (v Value) IsExact() bool { return v.stddev == 0 }

// RelativeError returns stddev / |nominal|. A zero nominal yields +Inf unless
// the value is exact.
func (v Value) RelativeError() float64 {
	if v.stddev == 0 {
		return 0
	}
	if v.nominal == 0 {
		return math.Inf(1)
	}

	return v.stddev / math.Abs(v.nominal)
}

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return Value{
		nominal: v.nominal + o.nominal,
		stddev:  math.Hypot(v.stddev, o.stddev),
	}
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value {
	return Value{
		nominal: v.nominal - o.nominal,
		stddev:  math.Hypot(v.stddev, o.stddev),
	}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{nominal: -v.nominal, stddev: v.stddev}
}

// Scale multiplies v by an exact constant.
func (v Value) Scale(c float64) Value {
	return Value{nominal: v.nominal * c, stddev: math.Abs(c) * v.stddev}
}

// Multiply returns v · o.
func (v Value) Multiply(o Value) Value {
	r := v.nominal * o.nominal
	if v.nominal == 0 || o.nominal == 0 {
		// relative errors are undefined; use the partial derivatives directly
		return Value{nominal: r, stddev: math.Hypot(o.nominal*v.stddev, v.nominal*o.stddev)}
	}

	return Value{
		nominal: r,
		stddev:  math.Abs(r) * math.Hypot(v.stddev/v.nominal, o.stddev/o.nominal),
	}
}

// Divide returns v / o. It fails with ErrDivisionByZero when o has a zero nominal value.
func (v Value) Divide(o Value) (Value, error) {
	if o.nominal == 0 {
		return Value{}, ErrDivisionByZero
	}

	r := v.nominal / o.nominal
	if v.nominal == 0 {
		return Value{nominal: r, stddev: v.stddev / math.Abs(o.nominal)}, nil
	}

	return Value{
		nominal: r,
		stddev:  math.Abs(r) * math.Hypot(v.stddev/v.nominal, o.stddev/o.nominal),
	}, nil
}

// RaisePower returns vⁿ for a constant exponent n.
func (v Value) RaisePower(n float64) (Value, error) {
	if n == 0 {
		return Exact(1), nil
	}
	if n == 1 {
		return v, nil
	}
	if v.nominal == 0 && n < 0 {
		return Value{}, fmt.Errorf("%w: 0^%g", ErrDivisionByZero, n)
	}

	r := math.Pow(v.nominal, n)
	if math.IsNaN(r) {
		return Value{}, fmt.Errorf("%w: %g^%g", ErrDomain, v.nominal, n)
	}
	if v.stddev == 0 {
		return Value{nominal: r}, nil
	}

	sd := math.Abs(n*math.Pow(v.nominal, n-1)) * v.stddev
	if math.IsNaN(sd) || math.IsInf(sd, 0) {
		return Value{}, fmt.Errorf("%w: derivative of x^%g at %g", ErrDomain, n, v.nominal)
	}

	return Value{nominal: r, stddev: sd}, nil
}

// Sqrt returns √v.
func (v Value) Sqrt() (Value, error) {
	return v.RaisePower(0.5)
}

// Sum adds all values; the empty sum is the exact zero.
func Sum(values ...Value) Value {
	var total Value
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}
