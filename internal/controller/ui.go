// Package controller provides output adapters for displaying scan results.
package controller

import (
	m "github.com/mouse-blink/paradigm/internal/model"
)

// UI defines the interface for displaying scan progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start initializes the UI before the scan begins.
	Start() error

	// ScanStarted reports the resolved target directory and the active
	// user-supplied exclusions.
	ScanStarted(dir string, excludes []string)

	// FilesFound reports how many candidate files the walker produced.
	FilesFound(count int)

	// FileScanned streams one classified file as the scan progresses.
	FileScanned(file m.FileCount)

	// Summary displays the final report. When showList is true a per-file
	// breakdown is included.
	Summary(report m.Report, files []m.FileCount, showList bool) error

	// Close finalizes the UI. Interactive implementations block here until
	// the user dismisses the view.
	Close()
}
