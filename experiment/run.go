package experiment

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/internal/hash"
	"github.com/arloliu/torsion/internal/options"
	"github.com/arloliu/torsion/physics"
	"github.com/arloliu/torsion/regression"
	"github.com/arloliu/torsion/uncertain"
)

// minPeriodTrials is the number of trials with a period needed to fit
// T² against 1/k.
const minPeriodTrials = 3

// TrialResult is the reduction of one trial.
type TrialResult struct {
	Trial  Trial
	Series *dataset.Series
	// Angles in radians and torques in N·m, the fitted x and y.
	Angles  []float64
	Torques []float64
	Fit     *regression.FitResult
	// Origin is the torque = k·angle fit through the origin, a cross-check
	// on the intercept of Fit.
	Origin *regression.Model
	// K is the torsion coefficient, N·m/rad.
	K uncertain.Value
	// ShearModulus is G in Pa.
	ShearModulus uncertain.Value
}

// PeriodResult is the fit of T² against 1/k across trials.
type PeriodResult struct {
	Trials  []int
	InvK    []uncertain.Value
	Squared []uncertain.Value
	Fit     *regression.FitResult
	// Inertia is the moment of inertia from the fitted slope, kg·m².
	Inertia uncertain.Value
}

// Report is the outcome of Run.
type Report struct {
	Name       string
	Trials     []TrialResult
	Period     *PeriodResult
	Weightless *uncertain.Value
	Comparison *physics.Comparison
	Duplicates []dataset.Duplicate
	// Files lists the report files written, in order.
	Files []string
}

// Run reduces every trial of cfg and, unless disabled, writes the tables and
// plots into the output directory.
func Run(cfg *Config, opts ...RunOption) (*Report, error) {
	rc := &runConfig{logger: slog.Default(), outputDir: cfg.Resolve(cfg.Output.Dir)}
	if err := options.Apply(rc, opts...); err != nil {
		return nil, err
	}
	log := rc.logger.With("experiment", cfg.Name)

	trials := cfg.TrialRecords()
	series, err := loadSeries(cfg, trials)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: cfg.Name, Duplicates: dataset.Duplicates(series)}
	for _, d := range report.Duplicates {
		log.Warn("identical measurement data", "first", d.First, "second", d.Second, "checksum", hash.Hex(d.Sum))
	}

	fitOpts := fitOptions(cfg)
	for i, trial := range trials {
		res, err := reduceTrial(cfg, trial, series[i], fitOpts)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial.Index, err)
		}
		report.Trials = append(report.Trials, res)

		log.Info("trial reduced",
			"trial", trial.Index,
			"source", res.Series.Source(),
			"rows", res.Series.Len(),
			"k", res.K.String(),
			"G_GPa", physics.Gigapascals(res.ShearModulus).String(),
			"r2", res.Fit.RSquared,
			"k_origin", res.Origin.Coefficients[0],
		)
	}

	report.Period, err = fitPeriods(report.Trials, fitOpts)
	if err != nil {
		return nil, err
	}
	if report.Period != nil {
		log.Info("moment of inertia from periods", "I", report.Period.Inertia.String(), "trials", len(report.Period.Trials))
	} else {
		log.Debug("period fit skipped", "min_trials", minPeriodTrials)
	}

	if err := compareWeightless(cfg, report); err != nil {
		return nil, err
	}
	if report.Comparison != nil {
		log.Info("inertia comparison",
			"weightless", report.Weightless.String(),
			"difference", report.Comparison.String(),
			"consistent", report.Comparison.Consistent(),
		)
	}

	if rc.noOutput || rc.outputDir == "" {
		return report, nil
	}
	if err := writeReport(cfg, report, rc.outputDir); err != nil {
		return report, err
	}
	log.Info("report written", "dir", rc.outputDir, "files", len(report.Files))

	return report, nil
}

func fitOptions(cfg *Config) []regression.FitOption {
	switch {
	case cfg.StudentT > 0:
		return []regression.FitOption{regression.WithStudentT(cfg.StudentT)}
	case cfg.Confidence > 0:
		return []regression.FitOption{regression.WithConfidence(cfg.Confidence)}
	default:
		return nil
	}
}

// loadSeries returns one series per trial, in trial order.
func loadSeries(cfg *Config, trials []Trial) ([]*dataset.Series, error) {
	out := make([]*dataset.Series, len(trials))

	if cfg.Blocks != "" {
		blocks, err := dataset.ReadBlocks(cfg.Resolve(cfg.Blocks), cfg.Marker)
		if err != nil {
			return nil, err
		}
		for i, t := range trials {
			if t.Index > len(blocks) {
				return nil, fmt.Errorf("trial %d: %w: %s has %d blocks", t.Index, dataset.ErrNoData, cfg.Blocks, len(blocks))
			}
			out[i] = blocks[t.Index-1]
		}

		return out, nil
	}

	for i, t := range trials {
		s, err := dataset.ReadSeries(t.Input)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", t.Index, err)
		}
		out[i] = s
	}

	return out, nil
}

func reduceTrial(cfg *Config, trial Trial, s *dataset.Series, fitOpts []regression.FitOption) (TrialResult, error) {
	angles, err := physics.ToRadians(s.Y(), cfg.Unit())
	if err != nil {
		return TrialResult{}, err
	}
	torques := physics.Torques(s.X(), cfg.ArmLength())

	fit, err := regression.FitWithError(angles, torques, fitOpts...)
	if err != nil {
		return TrialResult{}, fmt.Errorf("%s: %w", s.Source(), err)
	}

	origin, err := regression.FitModel(angles, torques, regression.ModelTypeProportional)
	if err != nil {
		return TrialResult{}, fmt.Errorf("%s: %w", s.Source(), err)
	}

	k := physics.TorsionCoefficient(fit)
	g, err := physics.ShearModulus(k, trial.LengthValue(), trial.DiameterValue())
	if err != nil {
		return TrialResult{}, err
	}

	return TrialResult{
		Trial:        trial,
		Series:       s,
		Angles:       angles,
		Torques:      torques,
		Fit:          fit,
		Origin:       origin,
		K:            k,
		ShearModulus: g,
	}, nil
}

// fitPeriods fits T² against 1/k. It returns nil when fewer than
// minPeriodTrials trials have a period.
func fitPeriods(results []TrialResult, fitOpts []regression.FitOption) (*PeriodResult, error) {
	pr := &PeriodResult{}
	for _, r := range results {
		period, ok := r.Trial.PeriodValue()
		if !ok {
			continue
		}

		invK, err := physics.Inverse(r.K)
		if err != nil {
			return nil, fmt.Errorf("trial %d: 1/k: %w", r.Trial.Index, err)
		}
		squared, err := period.RaisePower(2)
		if err != nil {
			return nil, fmt.Errorf("trial %d: T²: %w", r.Trial.Index, err)
		}

		pr.Trials = append(pr.Trials, r.Trial.Index)
		pr.InvK = append(pr.InvK, invK)
		pr.Squared = append(pr.Squared, squared)
	}
	if len(pr.Trials) < minPeriodTrials {
		return nil, nil
	}

	fit, err := regression.FitWithError(nominals(pr.InvK), nominals(pr.Squared), fitOpts...)
	if err != nil {
		return nil, fmt.Errorf("period fit: %w", err)
	}
	pr.Fit = fit
	pr.Inertia = physics.InertiaFromSlope(fit.Value())

	return pr, nil
}

// compareWeightless estimates the inertia from the weightless period and the
// reference trial's k, and compares it with the period fit.
func compareWeightless(cfg *Config, report *Report) error {
	in := cfg.Inertia
	if in.WeightlessPeriod <= 0 {
		return nil
	}

	var ref *TrialResult
	for i := range report.Trials {
		if report.Trials[i].Trial.Index == in.ReferenceTrial {
			ref = &report.Trials[i]
			break
		}
	}
	if ref == nil {
		return fmt.Errorf("%w: reference trial %d not found", ErrInvalidConfig, in.ReferenceTrial)
	}

	period := uncertain.WithAbsoluteError(in.WeightlessPeriod, in.WeightlessPeriodError)
	weightless, err := physics.InertiaFromPeriod(period, ref.K)
	if err != nil {
		return fmt.Errorf("weightless inertia: %w", err)
	}
	report.Weightless = &weightless

	if report.Period == nil {
		return nil
	}
	cmp, err := physics.Compare(report.Period.Inertia, weightless)
	if err != nil {
		return fmt.Errorf("inertia comparison: %w", err)
	}
	report.Comparison = &cmp

	return nil
}

func nominals(values []uncertain.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Nominal()
	}

	return out
}

func stddevs(values []uncertain.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.StdDev()
	}

	return out
}
