package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arloliu/torsion/experiment"
	"github.com/arloliu/torsion/physics"
)

func newRunCmd() *cobra.Command {
	var (
		outDir   string
		noOutput bool
	)

	cmd := &cobra.Command{
		Use:   "run CONFIG",
		Short: "Reduce an experiment described by a TOML file",
		Long: `Reduce every trial of an experiment: torsion coefficients, shear moduli,
the moment of inertia from periods, and the weightless-period comparison.
Tables and plots are written to the configured output directory and are
never overwritten.

Example: torsion run experiments/steel.toml --out report`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiment.Load(args[0])
			if err != nil {
				return err
			}

			opts := []experiment.RunOption{experiment.WithLogger(slog.Default())}
			if outDir != "" {
				opts = append(opts, experiment.WithOutputDir(outDir))
			}
			if noOutput {
				opts = append(opts, experiment.WithoutOutput())
			}

			report, err := experiment.Run(cfg, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range report.Trials {
				fmt.Fprintf(out, "trial %d: k = %s N·m/rad, G = %s GPa\n",
					r.Trial.Index, r.K, physics.Gigapascals(r.ShearModulus))
			}
			if report.Period != nil {
				fmt.Fprintf(out, "I (periods) = %s kg·m²\n", report.Period.Inertia)
			}
			if report.Weightless != nil {
				fmt.Fprintf(out, "I (weightless) = %s kg·m²\n", *report.Weightless)
			}
			if report.Comparison != nil {
				fmt.Fprintf(out, "%s, consistent: %t\n", report.Comparison, report.Comparison.Consistent())
			}
			for _, f := range report.Files {
				fmt.Fprintf(out, "wrote %s\n", f)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory, overrides [output].dir")
	cmd.Flags().BoolVar(&noOutput, "no-output", false, "do not write tables and plots")

	return cmd
}
