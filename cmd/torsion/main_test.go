package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFitCmd(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "line.csv", "x,y\n1,2.1\n2,3.9\n3,6.2\n4,7.8\n5,10.1\n")

	out, err := execute(t, "fit", path)
	require.NoError(t, err)
	require.Contains(t, out, "slope = 2.0 ± 0.1\n")
	require.Contains(t, out, "n = 5, multiplier = 2\n")
	require.Contains(t, out, "linear model: y = ")
}

func TestFitCmd_Model(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "origin.csv", "1,3\n2,6\n3,9\n4,12\n")

	out, err := execute(t, "fit", path, "--model", "Proportional")
	require.NoError(t, err)
	require.Contains(t, out, "proportional model: y = 3·x, R² = 1.000000, RMSE = 0\n")

	_, err = execute(t, "fit", path, "--model", "quadratic")
	require.ErrorContains(t, err, `unknown model "quadratic", want linear or proportional`)
}

func TestFitCmd_Torsion(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "trial1.csv",
		"Force (N), Angle (degrees)\n0.0117, 10\n0.0232, 20\n0.0350, 30\n0.0465, 40\n")

	out, err := execute(t, "fit", path, "--arm", "0.15", "--log-level", "error")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "k = "), out)
	require.Contains(t, out, "N·m/rad")
}

func TestFitCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "two.csv", "1,2\n2,4\n")

	_, err := execute(t, "fit", path)
	require.ErrorContains(t, err, "degenerate input")

	_, err = execute(t, "fit", path, "--log-format", "xml")
	require.ErrorContains(t, err, "invalid log format")

	_, err = execute(t, "fit", path, "--arm", "0.1", "--angle-unit", "grad")
	require.ErrorContains(t, err, "unknown angle unit")
}

func TestTableCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "k.csv", "a,b\n1,2\n3,4\n")

	out, err := execute(t, "table", path, "--format", "latex", "--row-numbers")
	require.NoError(t, err)
	require.Equal(t, "\\begin{tabular}{|c|c|c|}\n\\hline\n№ & col0 & col1 \\\\ \\hline\n"+
		"1 & 1 & 2 \\\\ \\hline\n2 & 3 & 4 \\\\ \\hline\n\\end{tabular}\n", out)

	target := filepath.Join(dir, "k.tex")
	out, err = execute(t, "table", path, "-o", target, "--compression", "lz4")
	require.NoError(t, err)
	require.Equal(t, "wrote "+target+".lz4\n", out)
	require.FileExists(t, target+".lz4")

	_, err = execute(t, "table", path, "-o", target, "--compression", "lz4")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "table", path, "-f", "html")
	require.ErrorContains(t, err, "unknown table format")
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	rows := "0.0117, 10\n0.0232, 20\n0.0350, 30\n0.0465, 40\n"
	writeCSV(t, dir, "trial1.csv", rows)
	config := writeCSV(t, dir, "exp.toml", `
name = "cli"
arm = 0.15
input = "trial%d.csv"

[[trial]]
index = 1
diameter_mm = 1.0
length = 0.5
`)

	out, err := execute(t, "run", config, "--no-output", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "trial 1: k = ")
	require.NotContains(t, out, "wrote")

	_, err = execute(t, "run", filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}
