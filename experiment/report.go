package experiment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/torsion/chart"
	"github.com/arloliu/torsion/format"
	"github.com/arloliu/torsion/physics"
	"github.com/arloliu/torsion/table"
	"github.com/arloliu/torsion/uncertain"
)

// Report file base names inside the output directory.
const (
	SummaryName = "torsion"
	PeriodName  = "period"
)

// artifact is one report file: its final path, the error reported when the
// path is already taken, and the function that creates it.
type artifact struct {
	path  string
	taken error
	write func() error
}

func writeReport(cfg *Config, report *Report, dir string) error {
	plan, err := planReport(cfg, report, dir)
	if err != nil {
		return err
	}
	if err := checkTargets(plan); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	return writeArtifacts(report, plan)
}

// planReport lists every table and plot the report consists of.
func planReport(cfg *Config, report *Report, dir string) ([]artifact, error) {
	var opts []table.Option
	if cfg.Output.RowNumbers {
		opts = append(opts, table.WithRowNumbers())
	}
	opts = append(opts, table.WithCompression(cfg.Compression()))

	summary, err := SummaryTable(report)
	if err != nil {
		return nil, err
	}
	plan, err := tableArtifacts(nil, summary, filepath.Join(dir, SummaryName), opts)
	if err != nil {
		return nil, err
	}

	if report.Period != nil {
		periods, err := PeriodTable(report.Period)
		if err != nil {
			return nil, err
		}
		plan, err = tableArtifacts(plan, periods, filepath.Join(dir, PeriodName), opts)
		if err != nil {
			return nil, err
		}
	}

	if !cfg.Output.Plots {
		return plan, nil
	}

	for _, r := range report.Trials {
		path := filepath.Join(dir, fmt.Sprintf("trial%d.svg", r.Trial.Index))
		plan = append(plan, artifact{
			path:  path,
			taken: chart.ErrAlreadyExists,
			write: func() error { return saveTrialPlot(cfg, r, path) },
		})
	}

	if report.Period != nil {
		path := filepath.Join(dir, PeriodName+".svg")
		plan = append(plan, artifact{
			path:  path,
			taken: chart.ErrAlreadyExists,
			write: func() error { return savePeriodPlot(report.Period, path) },
		})
	}

	return plan, nil
}

// tableArtifacts appends t as CSV and LaTeX next to each other.
func tableArtifacts(plan []artifact, t *table.Table, base string, opts []table.Option) ([]artifact, error) {
	for _, f := range []format.TableFormat{format.TableCSV, format.TableLaTeX} {
		path := base + f.Extension()
		target, err := table.Target(path, f, opts...)
		if err != nil {
			return nil, err
		}
		plan = append(plan, artifact{
			path:  target,
			taken: table.ErrAlreadyExists,
			write: func() error { return t.Write(path, f, opts...) },
		})
	}

	return plan, nil
}

// checkTargets fails when any planned file already exists, before anything
// is written.
func checkTargets(plan []artifact) error {
	for _, a := range plan {
		_, err := os.Stat(a.path)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s: %w", a.taken, a.path, fs.ErrExist)
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("check %s: %w", a.path, err)
		}
	}

	return nil
}

// writeArtifacts writes the plan in order. When a write fails the files
// already written are removed, so a failed run leaves no partial report.
func writeArtifacts(report *Report, plan []artifact) error {
	for _, a := range plan {
		if err := a.write(); err != nil {
			for _, f := range report.Files {
				_ = os.Remove(f)
			}
			report.Files = nil

			return err
		}
		report.Files = append(report.Files, a.path)
	}

	return nil
}

// SummaryTable lists k, G (GPa) and R² per trial.
func SummaryTable(report *Report) (*table.Table, error) {
	n := len(report.Trials)
	indices := make([]int, n)
	ks := make([]uncertain.Value, n)
	gs := make([]uncertain.Value, n)
	r2 := make([]float64, n)
	for i, r := range report.Trials {
		indices[i] = r.Trial.Index
		ks[i] = r.K
		gs[i] = physics.Gigapascals(r.ShearModulus)
		r2[i] = r.Fit.RSquared
	}

	return table.New(
		table.Ints("trial", indices),
		table.Values("k (N·m/rad)", ks),
		table.Values("G (GPa)", gs),
		table.Floats("R²", r2),
	)
}

// PeriodTable lists 1/k and T² per trial used in the period fit.
func PeriodTable(pr *PeriodResult) (*table.Table, error) {
	return table.New(
		table.Ints("trial", pr.Trials),
		table.Values("1/k (rad/(N·m))", pr.InvK),
		table.Values("T² (s²)", pr.Squared),
	)
}

func saveTrialPlot(cfg *Config, r TrialResult, path string) error {
	angleErr, err := physics.ToRadians([]float64{r.Trial.AngleError}, cfg.Unit())
	if err != nil {
		return err
	}
	torqueErr := physics.Torques([]float64{r.Trial.ForceError}, cfg.ArmLength())

	s := chart.Series{
		X:    r.Angles,
		Y:    r.Torques,
		XErr: repeat(angleErr[0], len(r.Angles)),
		YErr: repeat(torqueErr[0], len(r.Torques)),
	}
	c, err := chart.ErrorBarPlot(
		fmt.Sprintf("Trial %d: k = %s N·m/rad", r.Trial.Index, r.K),
		"angle, rad", "torque, N·m", s, r.Fit.Estimator(),
	)
	if err != nil {
		return fmt.Errorf("trial %d plot: %w", r.Trial.Index, err)
	}

	return c.Save(path)
}

func savePeriodPlot(pr *PeriodResult, path string) error {
	s := chart.Series{
		X:    nominals(pr.InvK),
		Y:    nominals(pr.Squared),
		XErr: stddevs(pr.InvK),
		YErr: stddevs(pr.Squared),
	}
	c, err := chart.ErrorBarPlot(
		fmt.Sprintf("T² vs 1/k: I = %s kg·m²", pr.Inertia),
		"1/k, rad/(N·m)", "T², s²", s, pr.Fit.Estimator(),
	)
	if err != nil {
		return fmt.Errorf("period plot: %w", err)
	}

	return c.Save(path)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
