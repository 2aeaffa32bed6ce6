package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/torsion/dataset"
	"github.com/arloliu/torsion/format"
)

const minimalConfig = `
name = "steel"
arm = 0.15
input = "data/trial%d.csv"

[[trial]]
index = 1
diameter_mm = 1.0
diameter_error_mm = 0.01
length = 0.5
length_error = 0.001
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	require.Equal(t, "steel", cfg.Name)
	require.Equal(t, format.AngleDegrees, cfg.Unit())
	require.Equal(t, format.CompressionNone, cfg.Compression())
	require.InDelta(t, 0.15, float64(cfg.ArmLength()), 1e-15)

	trials := cfg.TrialRecords()
	require.Len(t, trials, 1)
	require.Equal(t, 1, trials[0].Index)
	require.Equal(t, "data/trial1.csv", trials[0].Input)
	require.InDelta(t, 0.001, float64(trials[0].Diameter), 1e-15)
	require.InDelta(t, 1e-5, float64(trials[0].DiameterError), 1e-18)

	_, ok := trials[0].PeriodValue()
	require.False(t, ok)
}

func TestLoad_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steel.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, dir, cfg.BaseDir)
	require.Equal(t, filepath.Join(dir, "data", "trial1.csv"), cfg.TrialRecords()[0].Input)
	require.Equal(t, "/abs/out", cfg.Resolve("/abs/out"))

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Blocks(t *testing.T) {
	cfg, err := Parse([]byte(`
arm = 0.15
angle_unit = "rad"
blocks = "info.txt"

[[trial]]
index = 1
diameter_mm = 1.0
length = 0.5
`))
	require.NoError(t, err)
	require.Equal(t, dataset.DefaultMarker, cfg.Marker)
	require.Equal(t, format.AngleRadians, cfg.Unit())
	require.Empty(t, cfg.TrialRecords()[0].Input)
}

func TestParse_Invalid(t *testing.T) {
	trial := "\n[[trial]]\nindex = 1\ndiameter_mm = 1.0\nlength = 0.5\n"

	tests := []struct {
		name string
		toml string
	}{
		{"syntax", "arm = "},
		{"unknown key", "arm = 0.15\ninput = \"a%d\"\ncolour = 1\n" + trial},
		{"no source", "arm = 0.15\n" + trial},
		{"both sources", "arm = 0.15\ninput = \"a%d\"\nblocks = \"b\"\n" + trial},
		{"no arm", "input = \"a%d\"\n" + trial},
		{"angle unit", "arm = 0.15\ninput = \"a%d\"\nangle_unit = \"grad\"\n" + trial},
		{"confidence", "arm = 0.15\ninput = \"a%d\"\nconfidence = -1\n" + trial},
		{"student t", "arm = 0.15\ninput = \"a%d\"\nstudent_t = 1.5\n" + trial},
		{"compression", "arm = 0.15\ninput = \"a%d\"\n[output]\ncompression = \"gzip\"\n" + trial},
		{"no trials", "arm = 0.15\ninput = \"a%d\"\n"},
		{"zero index", "arm = 0.15\ninput = \"a%d\"\n[[trial]]\nindex = 0\ndiameter_mm = 1.0\nlength = 0.5\n"},
		{"duplicate index", "arm = 0.15\ninput = \"a%d\"\n" + trial + trial},
		{"zero diameter", "arm = 0.15\ninput = \"a%d\"\n[[trial]]\nindex = 1\nlength = 0.5\n"},
		{"negative error", "arm = 0.15\ninput = \"a%d\"\n[[trial]]\nindex = 1\ndiameter_mm = 1.0\nlength = 0.5\nforce_error = -0.1\n"},
		{"reference", "arm = 0.15\ninput = \"a%d\"\n[inertia]\nreference_trial = 2\nweightless_period = 1.0\n" + trial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
