package controller

import (
	m "github.com/mouse-blink/paradigm/internal/model"
)

// Message types.
type scanStartedMsg struct {
	dir      string
	excludes []string
}

type filesFoundMsg struct {
	count int
}

type fileScannedMsg struct {
	file m.FileCount
}

type summaryMsg struct {
	report m.Report
	files  []m.FileCount
}

// List item types.
type fileItem struct {
	path   string
	counts m.Counts
}

func (f fileItem) FilterValue() string {
	return f.path
}
