package domain

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/paradigm/internal/adapter"
	"github.com/mouse-blink/paradigm/internal/controller"
	m "github.com/mouse-blink/paradigm/internal/model"
)

// ScanArgs holds the parameters for a scan run.
type ScanArgs struct {
	// Dir is the target directory. Defaults to the current directory.
	Dir m.Path

	// Excludes are user-supplied exclusion substrings or glob patterns,
	// matched against paths relative to Dir.
	Excludes []string

	// Workers is the number of files classified concurrently. Values below 1
	// mean sequential scanning.
	Workers int

	// Output, when set, is a path the JSON report is additionally written to.
	Output m.Path

	// Summarize controls whether the report is displayed through the UI.
	// Structured output modes render the report themselves and disable it.
	Summarize bool

	// ShowList requests a per-file breakdown in the summary.
	ShowList bool
}

// ViewArgs holds the parameters for replaying a stored report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the interface for scan operations.
type Workflow interface {
	Scan(args ScanArgs) (m.Report, error)
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	tsAdapter adapter.TSFileAdapter
	store     adapter.ReportStore
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	tsAdapter adapter.TSFileAdapter,
	store adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		tsAdapter: tsAdapter,
		store:     store,
		ui:        ui,
	}
}

// Scan walks the target directory, classifies every candidate file and
// returns the aggregated report. A file that fails to read or parse
// contributes zero counts but still appears in the file count.
func (w *workflow) Scan(args ScanArgs) (m.Report, error) {
	dir, err := filepath.Abs(string(args.Dir))
	if err != nil {
		return m.Report{}, err
	}

	info, err := w.fsAdapter.FileInfo(m.Path(dir))
	if err != nil {
		return m.Report{}, fmt.Errorf("target directory: %w", err)
	}

	if !info.IsDir() {
		return m.Report{}, fmt.Errorf("target %s is not a directory", dir)
	}

	if err := w.ui.Start(); err != nil {
		return m.Report{}, err
	}

	w.ui.ScanStarted(dir, args.Excludes)

	paths, err := w.fsAdapter.ListFiles(m.Path(dir), args.Excludes)
	if err != nil {
		w.ui.Close()

		return m.Report{}, fmt.Errorf("list files: %w", err)
	}

	w.ui.FilesFound(len(paths))

	fileCounts := w.classifyAll(paths, m.Path(dir), args.Workers)

	var totals m.Totals
	for _, fc := range fileCounts {
		totals.Merge(fc.Counts)
	}

	report := m.NewReport(dir, totals)

	if args.Output != "" {
		if err := w.store.Save(args.Output, report); err != nil {
			w.ui.Close()

			return m.Report{}, err
		}
	}

	if args.Summarize {
		if err := w.ui.Summary(report, fileCounts, args.ShowList); err != nil {
			w.ui.Close()

			return m.Report{}, err
		}
	}

	w.ui.Close()

	return report, nil
}

// classifyAll runs the per-file read+parse+classify pipeline across a bounded
// worker group. Each worker writes to its own slice slot; totals are merged
// by the caller after Wait, so accumulation stays race-free.
func (w *workflow) classifyAll(paths []m.Path, dir m.Path, workers int) []m.FileCount {
	if workers < 1 {
		workers = 1
	}

	fileCounts := make([]m.FileCount, len(paths))

	ctx := context.Background()

	var group errgroup.Group

	group.SetLimit(workers)

	for i, path := range paths {
		group.Go(func() error {
			rel, err := w.fsAdapter.RelPath(dir, path)
			if err != nil {
				rel = path
			}

			counts := w.classifyFile(ctx, path)
			fileCounts[i] = m.FileCount{Path: rel, Counts: counts}
			w.ui.FileScanned(fileCounts[i])

			return nil
		})
	}

	// Workers never return errors; failures degrade to zero counts.
	_ = group.Wait()

	return fileCounts
}

// classifyFile returns the construct tally for one file. Read and parse
// failures are silent: the file contributes zero to every bucket.
func (w *workflow) classifyFile(ctx context.Context, path m.Path) m.Counts {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Counts{}
	}

	tree, err := w.tsAdapter.Parse(ctx, path, content)
	if err != nil {
		return m.Counts{}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return m.Counts{}
	}

	return Classify(root)
}

// View loads a stored report and displays it through the UI.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.store.Load(args.Report)
	if err != nil {
		return err
	}

	if err := w.ui.Start(); err != nil {
		return err
	}

	err = w.ui.Summary(report, nil, false)

	w.ui.Close()

	return err
}
