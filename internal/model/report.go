package model

import (
	"fmt"
	"math"
)

// RatioSentinel is rendered in text output when the FP total is zero and the
// ratio is unbounded. Structured output uses null instead.
const RatioSentinel = "Infinity"

// OOPBreakdown holds the object-oriented side of the report.
type OOPBreakdown struct {
	Total   int `json:"total"`
	Classes int `json:"classes"`
	Methods int `json:"methods"`
}

// FPBreakdown holds the functional side of the report.
type FPBreakdown struct {
	Total          int `json:"total"`
	Functions      int `json:"functions"`
	ArrowFunctions int `json:"arrowFunctions"`
}

// Report is the structured result of one scan. Ratio is nil when the FP total
// is zero, which marshals to JSON null.
type Report struct {
	Directory string       `json:"directory"`
	Files     int          `json:"files"`
	OOP       OOPBreakdown `json:"oop"`
	FP        FPBreakdown  `json:"fp"`
	Ratio     *float64     `json:"ratio"`
}

// NewReport builds a Report from accumulated totals.
func NewReport(directory string, totals Totals) Report {
	report := Report{
		Directory: directory,
		Files:     totals.Files,
		OOP: OOPBreakdown{
			Total:   totals.OOPTotal(),
			Classes: totals.Classes,
			Methods: totals.Methods,
		},
		FP: FPBreakdown{
			Total:          totals.FPTotal(),
			Functions:      totals.Functions,
			ArrowFunctions: totals.Arrows,
		},
	}

	if ratio, ok := totals.Ratio(); ok {
		rounded := math.Round(ratio*100) / 100
		report.Ratio = &rounded
	}

	return report
}

// RatioDisplay renders the ratio for human output, using the sentinel token
// when the ratio is unbounded.
func (r Report) RatioDisplay() string {
	if r.Ratio == nil {
		return RatioSentinel
	}

	return fmt.Sprintf("%.2f", *r.Ratio)
}
