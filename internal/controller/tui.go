package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background so the scan can
// stream progress messages into it.
func (t *TUI) Start() error {
	t.program = tea.NewProgram(newScanModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// ScanStarted reports the scan target and exclusions to the view.
func (t *TUI) ScanStarted(dir string, excludes []string) {
	t.send(scanStartedMsg{dir: dir, excludes: excludes})
}

// FilesFound reports the number of candidate files.
func (t *TUI) FilesFound(count int) {
	t.send(filesFoundMsg{count: count})
}

// FileScanned streams one classified file into the progress view.
func (t *TUI) FileScanned(file m.FileCount) {
	t.send(fileScannedMsg{file: file})
}

// Summary switches the view to the final report.
func (t *TUI) Summary(report m.Report, files []m.FileCount, _ bool) error {
	t.send(summaryMsg{report: report, files: files})

	return nil
}

// Close blocks until the user dismisses the view.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	<-t.done
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}
