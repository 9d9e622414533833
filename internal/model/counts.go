// Package model defines the data structures for paradigm classification.
package model

// Counts is the four-way construct tally for one source file.
// Classes and Methods feed the OOP bucket, Functions and Arrows the FP bucket.
type Counts struct {
	Classes   int
	Methods   int
	Functions int
	Arrows    int
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.Classes += other.Classes
	c.Methods += other.Methods
	c.Functions += other.Functions
	c.Arrows += other.Arrows
}

// IsZero reports whether no construct was tallied.
func (c Counts) IsZero() bool {
	return c == Counts{}
}

// Totals is the grand sum over all scanned files plus the file count.
// Files counts every file the walker found, including files that failed to
// read or parse and therefore contributed zero counts.
type Totals struct {
	Counts
	Files int
}

// Merge folds one file's counts into the totals and bumps the file count.
func (t *Totals) Merge(c Counts) {
	t.Add(c)
	t.Files++
}

// OOPTotal returns classes + methods.
func (t Totals) OOPTotal() int {
	return t.Classes + t.Methods
}

// FPTotal returns functions + arrows.
func (t Totals) FPTotal() int {
	return t.Functions + t.Arrows
}

// Ratio returns OOPTotal/FPTotal. ok is false when the FP total is zero and
// the ratio is unbounded.
func (t Totals) Ratio() (ratio float64, ok bool) {
	fp := t.FPTotal()
	if fp == 0 {
		return 0, false
	}

	return float64(t.OOPTotal()) / float64(fp), true
}

// FileCount pairs a scanned file with its tally for per-file breakdowns.
type FileCount struct {
	Path   Path
	Counts Counts
}
