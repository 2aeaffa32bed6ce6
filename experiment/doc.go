// Package experiment runs the full reduction of a torsion-pendulum
// experiment described by a TOML file.
//
// # Configuration
//
// A configuration lists the trials (wire geometry, assumed measurement
// errors, oscillation period) and where their force/angle data lives:
//
//	name = "steel wire"
//	arm = 0.15                  # lever arm, m
//	angle_unit = "degrees"
//	input = "data/trial%d.csv"  # or: blocks = "info.txt"
//
//	[[trial]]
//	index = 1
//	diameter_mm = 1.0
//	diameter_error_mm = 0.01
//	length = 0.5
//	length_error = 0.001
//	force_error = 0.01
//	angle_error = 0.5
//	period = 1.245
//	period_error = 0.01
//
//	[inertia]
//	reference_trial = 1
//	weightless_period = 0.9
//	weightless_period_error = 0.01
//
//	[output]
//	dir = "report"
//	row_numbers = true
//	plots = true
//
// Relative paths are resolved against the directory of the configuration
// file.
//
// # Reduction
//
// For every trial the applied forces are turned into torques, the angles
// into radians, and the torque-vs-angle slope gives the torsion coefficient
// k and from it the shear modulus G. With three or more periods the fit of
// T² against 1/k yields the moment of inertia of the pendulum, which is
// compared against the weightless-period estimate when one is configured.
package experiment
