package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/unit"

	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/format"
)

// ErrInvalidConfig is returned when an experiment configuration fails
// validation.
var ErrInvalidConfig = errors.New("invalid experiment config")

// Config is the decoded experiment file.
type Config struct {
	Name       string  `toml:"name"`
	Arm        float64 `toml:"arm"`
	AngleUnit  string  `toml:"angle_unit"`
	Confidence float64 `toml:"confidence"`
	StudentT   float64 `toml:"student_t"`

	// Input is a printf pattern with one integer verb for per-trial files.
	Input string `toml:"input"`
	// Blocks is a combined file with one marker-delimited block per trial.
	Blocks string `toml:"blocks"`
	Marker string `toml:"marker"`

	Trials  []TrialConfig `toml:"trial"`
	Inertia InertiaConfig `toml:"inertia"`
	Output  OutputConfig  `toml:"output"`

	// BaseDir resolves relative paths. Load sets it to the file's directory.
	BaseDir string `toml:"-"`
}

// TrialConfig describes one trial as written in the configuration file.
type TrialConfig struct {
	Index           int     `toml:"index"`
	DiameterMM      float64 `toml:"diameter_mm"`
	DiameterErrorMM float64 `toml:"diameter_error_mm"`
	Length          float64 `toml:"length"`
	LengthError     float64 `toml:"length_error"`
	ForceError      float64 `toml:"force_error"`
	AngleError      float64 `toml:"angle_error"`
	Period          float64 `toml:"period"`
	PeriodError     float64 `toml:"period_error"`
}

// InertiaConfig enables the weightless-period estimate of the moment of
// inertia, measured on the wire of the reference trial.
type InertiaConfig struct {
	ReferenceTrial        int     `toml:"reference_trial"`
	WeightlessPeriod      float64 `toml:"weightless_period"`
	WeightlessPeriodError float64 `toml:"weightless_period_error"`
}

// OutputConfig controls report emission. An empty Dir disables it.
type OutputConfig struct {
	Dir         string `toml:"dir"`
	RowNumbers  bool   `toml:"row_numbers"`
	Plots       bool   `toml:"plots"`
	Compression string `toml:"compression"`
}

// Load reads and validates the experiment file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	return cfg, nil
}

// Parse decodes and validates a TOML experiment. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse TOML: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration and fills defaults (angle unit
// "degrees", data marker).
func (c *Config) Validate() error {
	invalid := func(msg string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(msg, args...))
	}

	if (c.Input == "") == (c.Blocks == "") {
		return invalid("exactly one of input and blocks must be set")
	}
	if !(c.Arm > 0) {
		return invalid("arm must be positive, got %g", c.Arm)
	}
	if c.AngleUnit == "" {
		c.AngleUnit = format.AngleDegrees.String()
	}
	if _, ok := format.ParseAngleUnit(c.AngleUnit); !ok {
		return invalid("unknown angle_unit %q", c.AngleUnit)
	}
	if c.Confidence < 0 {
		return invalid("confidence must not be negative, got %g", c.Confidence)
	}
	if c.StudentT < 0 || c.StudentT >= 1 {
		return invalid("student_t must be in [0, 1), got %g", c.StudentT)
	}
	if c.Blocks != "" && c.Marker == "" {
		c.Marker = dataset.DefaultMarker
	}
	if _, ok := format.ParseCompressionType(c.Output.Compression); !ok {
		return invalid("unknown output compression %q", c.Output.Compression)
	}

	if len(c.Trials) == 0 {
		return invalid("no trials")
	}
	seen := make(map[int]bool, len(c.Trials))
	for _, t := range c.Trials {
		if t.Index < 1 {
			return invalid("trial index must be >= 1, got %d", t.Index)
		}
		if seen[t.Index] {
			return invalid("duplicate trial index %d", t.Index)
		}
		seen[t.Index] = true

		if !(t.DiameterMM > 0) || !(t.Length > 0) {
			return invalid("trial %d: diameter and length must be positive", t.Index)
		}
		if t.DiameterErrorMM < 0 || t.LengthError < 0 || t.ForceError < 0 || t.AngleError < 0 ||
			t.Period < 0 || t.PeriodError < 0 {
			return invalid("trial %d: errors and period must not be negative", t.Index)
		}
	}

	if c.Inertia.WeightlessPeriod < 0 || c.Inertia.WeightlessPeriodError < 0 {
		return invalid("weightless period must not be negative")
	}
	if c.Inertia.WeightlessPeriod > 0 && !seen[c.Inertia.ReferenceTrial] {
		return invalid("inertia reference trial %d is not configured", c.Inertia.ReferenceTrial)
	}

	return nil
}

// Unit returns the configured angle unit.
func (c *Config) Unit() format.AngleUnit {
	u, _ := format.ParseAngleUnit(c.AngleUnit)
	return u
}

// Compression returns the configured output compression.
func (c *Config) Compression() format.CompressionType {
	ct, _ := format.ParseCompressionType(c.Output.Compression)
	return ct
}

// ArmLength returns the lever arm.
func (c *Config) ArmLength() unit.Length {
	return unit.Length(c.Arm)
}

// Resolve joins a relative path with BaseDir.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}

	return filepath.Join(c.BaseDir, path)
}

// TrialRecords converts the configured trials into Trial records, in file
// order.
func (c *Config) TrialRecords() []Trial {
	trials := make([]Trial, len(c.Trials))
	for i, t := range c.Trials {
		trials[i] = Trial{
			Index:         t.Index,
			Diameter:      unit.Length(t.DiameterMM * unit.Milli),
			DiameterError: unit.Length(t.DiameterErrorMM * unit.Milli),
			Length:        unit.Length(t.Length),
			LengthError:   unit.Length(t.LengthError),
			ForceError:    t.ForceError,
			AngleError:    t.AngleError,
			Period:        t.Period,
			PeriodError:   t.PeriodError,
		}
		if c.Input != "" {
			trials[i].Input = c.Resolve(dataset.TrialPath(c.Input, t.Index))
		}
	}

	return trials
}
