package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/paradigm/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func finiteReport() m.Report {
	ratio := 0.38

	return m.Report{
		Directory: "/tmp/project",
		Files:     2,
		OOP:       m.OOPBreakdown{Total: 3, Classes: 1, Methods: 2},
		FP:        m.FPBreakdown{Total: 8, Functions: 3, ArrowFunctions: 5},
		Ratio:     &ratio,
	}
}

func TestSimpleUI_StatusLinesGoToStderr(t *testing.T) {
	cmd, out, errOut := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.ScanStarted("/tmp/project", []string{"spec", "legacy"})
	ui.FilesFound(2)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Scanning: /tmp/project\n")
	assert.Contains(t, errOut.String(), "Excluding: spec, legacy\n")
	assert.Contains(t, errOut.String(), "Found 2 files\n")
}

func TestSimpleUI_NoExcludingLineWithoutExcludes(t *testing.T) {
	cmd, _, errOut := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.ScanStarted("/tmp/project", nil)

	assert.NotContains(t, errOut.String(), "Excluding")
}

func TestSimpleUI_Summary(t *testing.T) {
	t.Run("prints the four report lines", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		require.NoError(t, ui.Summary(finiteReport(), nil, false))

		expected := "OOP: 3 (1 classes + 2 methods)\n" +
			"FP: 8 (3 functions + 5 arrows)\n" +
			"Ratio (OOP:FP): 0.38:1\n" +
			"Files: 2\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("renders the sentinel for an unbounded ratio", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		report := finiteReport()
		report.Ratio = nil
		report.FP = m.FPBreakdown{}

		require.NoError(t, ui.Summary(report, nil, false))

		assert.Contains(t, out.String(), "Ratio (OOP:FP): Infinity:1\n")
	})

	t.Run("includes the per-file table when requested", func(t *testing.T) {
		cmd, out, _ := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		files := []m.FileCount{
			{Path: "store.ts", Counts: m.Counts{Classes: 1, Methods: 2}},
			{Path: "helpers.ts", Counts: m.Counts{Functions: 3, Arrows: 5}},
		}

		require.NoError(t, ui.Summary(finiteReport(), files, true))

		assert.Contains(t, out.String(), "store.ts")
		assert.Contains(t, out.String(), "helpers.ts")
		// tablewriter upper-cases footer cells.
		assert.Contains(t, strings.ToUpper(out.String()), "TOTAL FILES 2")
	})
}
