// Package regression fits straight lines to paired samples and estimates the
// uncertainty of the fitted slope.
//
// The central entry point is FitWithError, which returns the ordinary least
// squares slope of y on x together with a confidence-scaled slope error:
//
//	error = k · √( (1/(n-2)) · (Dy/Dx - slope²) )
//
// where Dx and Dy are the Bessel-corrected sample variances of x and y and k
// is the confidence multiplier (2 by default).
//
// # About the Slope Error Formula
//
// The expression above is the one given in the lab manual and is kept exactly
// as written, because reported uncertainties are calibrated against it. It is
// computed from the two marginal variances rather than from the residual sum
// of squares, so it is not the usual textbook route to the OLS slope standard
// error. The two agree in exact arithmetic; they differ in floating point, and
// the radicand can come out slightly negative for perfectly linear data. Values
// within a relative tolerance of zero are clamped; anything more negative is
// reported as ErrNegativeVariance.
//
// The fixed multiplier k = 2 approximates a 95% interval for large n under a
// normal approximation. It is not a Student-t quantile; use WithStudentT to get
// one for small samples.
//
// # Usage
//
//	fit, err := regression.FitWithError(angles, torques)
//	if err != nil {
//	    return err
//	}
//	k := fit.Value() // torsion coefficient with its uncertainty
//	fmt.Printf("k = %s (R²=%.4f)\n", k, fit.RSquared)
//
// # Models
//
// FitModel exposes the fitted line through the Estimator interface, for
// drawing fit lines and predicting values:
//
//   - Linear: y = a + b·x
//   - Proportional: y = b·x (line through the origin)
package regression
