package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// SimpleUI implements UI with plain text output through a cobra Command.
// Progress/status lines go to the command's error stream so piped report
// output stays clean; the report itself goes to the output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// ScanStarted prints the scan target and active exclusions.
func (s *SimpleUI) ScanStarted(dir string, excludes []string) {
	s.statusf("Scanning: %s\n", dir)

	if len(excludes) > 0 {
		s.statusf("Excluding: %s\n", strings.Join(excludes, ", "))
	}
}

// FilesFound prints the number of candidate files.
func (s *SimpleUI) FilesFound(count int) {
	s.statusf("Found %d files\n", count)
}

// FileScanned is a no-op in simple mode; per-file results only appear in the
// final breakdown table.
func (s *SimpleUI) FileScanned(_ m.FileCount) {
}

// Summary prints the report lines, preceded by a per-file table when
// showList is set.
func (s *SimpleUI) Summary(report m.Report, files []m.FileCount, showList bool) error {
	if showList {
		s.printf("%s\n", renderFileTable(files))
	}

	s.printf("OOP: %d (%d classes + %d methods)\n", report.OOP.Total, report.OOP.Classes, report.OOP.Methods)
	s.printf("FP: %d (%d functions + %d arrows)\n", report.FP.Total, report.FP.Functions, report.FP.ArrowFunctions)
	s.printf("Ratio (OOP:FP): %s:1\n", report.RatioDisplay())
	s.printf("Files: %d\n", report.Files)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) statusf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

// renderFileTable renders the per-file breakdown used by --list.
func renderFileTable(files []m.FileCount) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Classes", "Methods", "Functions", "Arrows"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var totals m.Counts

	for _, file := range files {
		table.Append([]string{
			string(file.Path),
			fmt.Sprintf("%d", file.Counts.Classes),
			fmt.Sprintf("%d", file.Counts.Methods),
			fmt.Sprintf("%d", file.Counts.Functions),
			fmt.Sprintf("%d", file.Counts.Arrows),
		})

		totals.Add(file.Counts)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", totals.Classes),
		fmt.Sprintf("%d", totals.Methods),
		fmt.Sprintf("%d", totals.Functions),
		fmt.Sprintf("%d", totals.Arrows),
	})

	table.Render()

	return tableBuffer.String()
}
