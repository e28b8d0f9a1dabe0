package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRunPrintsCompactPath(t *testing.T) {
	out, _, code := runCmd(t, "", "M 10 20 L 30 40")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "M10 20L30 40\n", out)
}

func TestRunReadsStdin(t *testing.T) {
	out, _, code := runCmd(t, "  m 10 20 l 5 5\n", "-abs")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "M10 20L15 25\n", out)
}

func TestRunParseError(t *testing.T) {
	out, errOut, code := runCmd(t, "", "L 10 20")
	assert.Equal(t, exitError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "should start with")
}

func TestRunUsageErrors(t *testing.T) {
	_, _, code := runCmd(t, "", "-nosuchflag", "M0 0")
	assert.Equal(t, exitUsage, code)

	_, errOut, code := runCmd(t, "", "-output", "json", "M0 0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "json")

	_, _, code = runCmd(t, "", "M0 0", "M1 1")
	assert.Equal(t, exitUsage, code)
}

func TestRunNormalizeAndPrecision(t *testing.T) {
	out, _, code := runCmd(t, "", "-normalize", "-precision", "0", "M0 0 H10 V10 h-10 z")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "M0 0L10 0 10 10 0 10Z\n", out)
}

func TestRunMeasurements(t *testing.T) {
	out, _, code := runCmd(t, "", "-bbox", "-length", "-at", "15", "M0 0 H10 V10")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "M0 0H10V10\nbbox: 0 0 10 10 (10x10)\nlength: 20\nat: 10 5\n", out)
}

func TestRunYAMLOutput(t *testing.T) {
	out, _, code := runCmd(t, "", "-output", "yaml", "-length", "M0 0 L3 4")
	require.Equal(t, exitOK, code)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "M0 0L3 4", rep.Path)
	require.NotNil(t, rep.Length)
	assert.InDelta(t, 5, *rep.Length, 1e-9)
	assert.Nil(t, rep.BBox)
	assert.Nil(t, rep.At)
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "svgpath.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("precision = 1\noutput = \"yaml\"\n"), 0o644))

	out, _, code := runCmd(t, "", "-config", cfgPath, "M0.123 0.456")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "path: M0.1 0.5\n", out)

	// Flags override the file.
	out, _, code = runCmd(t, "", "-config", cfgPath, "-output", "text", "-precision", "2", "M0.123 0.456")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "M0.12 0.46\n", out)
}

func TestRunConfigErrors(t *testing.T) {
	_, errOut, code := runCmd(t, "", "-config", filepath.Join(t.TempDir(), "missing.toml"), "M0 0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "reading config")

	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("precision = \"lots\"\n"), 0o644))
	_, errOut, code = runCmd(t, "", "-config", cfgPath, "M0 0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "parsing config")
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "svgpath.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("normalize = true\n"), 0o644))
	cfg, err := loadConfig(cfgPath, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, config{Precision: -1, Normalize: true, Output: "text"}, cfg)
}
