// Package uncertain implements measured quantities with first-order
// (linearized) uncertainty propagation.
//
// A Value is a nominal value paired with a non-negative standard deviation.
// Arithmetic combines nominal values exactly and standard deviations by
// treating each operation as a local Taylor expansion, adding independent
// variances in quadrature:
//
//	a + b, a - b:  σ = √(σa² + σb²)
//	a · b, a / b:  σ/|r| = √((σa/a)² + (σb/b)²)
//	aⁿ:            σ = |n·aⁿ⁻¹|·σa
//
// Operands are assumed independent. Expressions that reuse the same Value
// (a·a instead of a²) therefore overstate the uncertainty; use RaisePower for
// powers.
//
// # Usage
//
//	d := uncertain.WithAbsoluteError(1.5e-3, 1e-5) // diameter, m
//	l := uncertain.WithRelativeError(0.5, 0.01)    // length with 1% error
//	d4, err := d.RaisePower(4)
//	if err != nil {
//	    return err
//	}
//	ratio, err := l.Divide(d4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ratio) // (9.9 ± 0.3)e+10
//
// Values are immutable; every operation returns a new Value.
package uncertain
