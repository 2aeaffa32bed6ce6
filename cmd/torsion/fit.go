package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/physics"
	"github.com/arloliu/torsion/regression"
)

func newFitCmd() *cobra.Command {
	var (
		confidence float64
		studentT   float64
		arm        float64
		angleUnit  string
		model      string
	)

	cmd := &cobra.Command{
		Use:   "fit FILE",
		Short: "Fit the second column against the first and print the slope with its error",
		Long: `Fit a straight line through a two-column CSV file and print the slope
with its confidence-scaled error.

With --arm the file is read as force/angle rows of a torsion trial: forces
become torques at the given lever arm, angles are converted to radians, and
the slope is the torsion coefficient k.

--model also fits the chosen straight-line model (linear or proportional)
and prints its formula with R² and RMSE. The proportional model forces the
line through the origin.

Example: torsion fit data/trial1.csv --arm 0.15 --angle-unit degrees`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modelType := regression.ModelTypeFromString(model)
			if modelType == regression.ModelType(-1) {
				return fmt.Errorf("unknown model %q, want %s or %s",
					model, regression.ModelTypeLinear, regression.ModelTypeProportional)
			}

			s, err := dataset.ReadSeries(args[0])
			if err != nil {
				return err
			}

			x, y := s.X(), s.Y()
			if arm > 0 {
				u, ok := format.ParseAngleUnit(angleUnit)
				if !ok {
					return fmt.Errorf("unknown angle unit %q", angleUnit)
				}
				angles, err := physics.ToRadians(y, u)
				if err != nil {
					return err
				}
				x, y = angles, physics.Torques(x, unit.Length(arm))
			}

			var opts []regression.FitOption
			if studentT > 0 {
				opts = append(opts, regression.WithStudentT(studentT))
			} else {
				opts = append(opts, regression.WithConfidence(confidence))
			}

			fit, err := regression.FitWithError(x, y, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Source(), err)
			}

			out := cmd.OutOrStdout()
			if arm > 0 {
				fmt.Fprintf(out, "k = %s N·m/rad\n", physics.TorsionCoefficient(fit))
			} else {
				fmt.Fprintf(out, "slope = %s\n", fit.Value())
			}
			fmt.Fprintf(out, "intercept = %.6g, R² = %.6f, n = %d, multiplier = %.4g\n",
				fit.Intercept, fit.RSquared, fit.N, fit.Confidence)

			m, err := regression.FitModel(x, y, modelType)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Source(), err)
			}
			fmt.Fprintf(out, "%s model: %s, R² = %.6f, RMSE = %.4g\n", m.Type, m.Formula, m.RSquared, m.RMSE)

			return nil
		},
	}

	cmd.Flags().Float64Var(&confidence, "confidence", regression.DefaultConfidence, "multiplier applied to the slope standard error")
	cmd.Flags().Float64Var(&studentT, "student-t", 0, "use the Student-t quantile at this confidence level instead of --confidence")
	cmd.Flags().Float64Var(&arm, "arm", 0, "lever arm in meters; enables force/angle torsion mode")
	cmd.Flags().StringVar(&model, "model", regression.ModelTypeLinear.String(), "straight-line model to report: linear or proportional")
	cmd.Flags().StringVar(&angleUnit, "angle-unit", format.AngleDegrees.String(), "unit of the angle column in torsion mode")

	return cmd
}
