package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/paradigm/internal/model"
)

func runRoot(t *testing.T, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	return out, errOut, cmd.Execute()
}

func mixedFixture(t *testing.T) string {
	t.Helper()

	dir, err := filepath.Abs(filepath.Join("..", "examples", "mixed"))
	require.NoError(t, err)

	return dir
}

func TestRootCmd_JSONOutput(t *testing.T) {
	out, errOut, err := runRoot(t, mixedFixture(t), "--json")
	require.NoError(t, err)

	var report m.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report), "stdout should be a single JSON object\n%s", out.String())

	assert.Equal(t, 2, report.Files)
	assert.Equal(t, m.OOPBreakdown{Total: 3, Classes: 1, Methods: 2}, report.OOP)
	assert.Equal(t, m.FPBreakdown{Total: 8, Functions: 3, ArrowFunctions: 5}, report.FP)
	require.NotNil(t, report.Ratio)
	assert.InDelta(t, 0.38, *report.Ratio, 0.001)

	// Status lines must not pollute the structured stream.
	assert.Contains(t, errOut.String(), "Found 2 files")
}

func TestRootCmd_TextOutput(t *testing.T) {
	out, errOut, err := runRoot(t, mixedFixture(t), "--no-tui")
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "Scanning: ")
	assert.Contains(t, errOut.String(), "Found 2 files")
	assert.Contains(t, out.String(), "OOP: 3 (1 classes + 2 methods)")
	assert.Contains(t, out.String(), "FP: 8 (3 functions + 5 arrows)")
	assert.Contains(t, out.String(), "Ratio (OOP:FP): 0.38:1")
	assert.Contains(t, out.String(), "Files: 2")
}

func TestRootCmd_ExcludeFlag(t *testing.T) {
	out, errOut, err := runRoot(t, mixedFixture(t), "--json", "-x", "helpers")
	require.NoError(t, err)

	var report m.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 0, report.FP.Total)
	assert.Contains(t, errOut.String(), "Excluding: helpers")
}

func TestRootCmd_ListFlag(t *testing.T) {
	out, _, err := runRoot(t, mixedFixture(t), "--no-tui", "-l")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "store.ts")
	assert.Contains(t, out.String(), "helpers.ts")
}

func TestRootCmd_OutputFlag(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.json")

	_, _, err := runRoot(t, mixedFixture(t), "--json", "-o", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report m.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Files)
}

func TestRootCmd_ConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kept.ts"), []byte("function keep() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skipped.ts"), []byte("function skip() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paradigm.yaml"), []byte("scan:\n  excludes:\n    - skipped\n"), 0o644))

	out, _, err := runRoot(t, dir, "--json")
	require.NoError(t, err)

	var report m.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, 1, report.Files)
	assert.Equal(t, 1, report.FP.Functions)
}

func TestRootCmd_MissingTarget(t *testing.T) {
	_, _, err := runRoot(t, filepath.Join(t.TempDir(), "gone"), "--json")
	assert.Error(t, err)
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "paradigm [dir]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"exclude", "json", "list", "output", "parallel", "config"} {
		assert.NotNilf(t, cmd.Flags().Lookup(name), "flag %s should be registered", name)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("no-tui"))
}

func TestExecuteHelpers(t *testing.T) {
	// loadConfig honors an explicit --config path over target-dir discovery.
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan:\n  parallel: 7\n"), 0o644))

	configFlag = cfgPath
	defer func() { configFlag = "" }()

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scan.Parallel)
}
