package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// ReportStore persists and retrieves scan reports.
type ReportStore interface {
	Save(path m.Path, report m.Report) error
	Load(path m.Path) (m.Report, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation backed by JSON files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) Save(path m.Path, report m.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) Load(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
