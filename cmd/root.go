// Package cmd provides the root command and CLI setup for paradigm.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/paradigm/internal/adapter"
	"github.com/mouse-blink/paradigm/internal/config"
	"github.com/mouse-blink/paradigm/internal/controller"
	"github.com/mouse-blink/paradigm/internal/domain"
	m "github.com/mouse-blink/paradigm/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var tsAdapter adapter.TSFileAdapter
var reportStore adapter.ReportStore

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tsAdapter = adapter.NewLocalTSFileAdapter()
	reportStore = adapter.NewReportStore()
}

var excludeFlags []string
var jsonFlag bool
var listFlag bool
var outputFlag string
var parallelFlag int
var configFlag string
var noTUIFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paradigm [dir]",
		Short: "Classify a TypeScript codebase as OOP or FP",
		Long: `Paradigm statically classifies a TypeScript/TSX source tree as
object-oriented or functional in style. It counts class and method
declarations against free functions and arrow functions, then reports
the aggregate OOP:FP ratio.

Examples:
  paradigm                        scan the current directory
  paradigm ./src -x test,mocks    scan ./src, skipping matching paths
  paradigm --json | jq .ratio     machine-readable output`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			excludes := append(cfg.Excludes(), excludeFlags...)

			workers := parallelFlag
			if !cmd.Flags().Changed("parallel") && cfg.Scan.Parallel > 0 {
				workers = cfg.Scan.Parallel
			}

			output := outputFlag
			if output == "" {
				output = cfg.Scan.Output
			}

			useTTY := !jsonFlag && !noTUIFlag && controller.IsTTY(cmd.OutOrStdout())
			ui := controller.NewUI(cmd, useTTY)
			workflow := domain.NewWorkflow(fsAdapter, tsAdapter, reportStore, ui)

			report, err := workflow.Scan(domain.ScanArgs{
				Dir:       m.Path(dir),
				Excludes:  excludes,
				Workers:   workers,
				Output:    m.Path(output),
				Summarize: !jsonFlag,
				ShowList:  listFlag,
			})
			if err != nil {
				return err
			}

			if jsonFlag {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&excludeFlags, "exclude", "x", nil,
		"comma-separated path substrings (or glob patterns) to exclude")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the report as a single JSON object")
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "include a per-file breakdown in the summary")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "also write the JSON report to this file")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for classification")
	cmd.Flags().StringVar(&configFlag, "config", "", "config file (default paradigm.yaml in the target directory)")
	cmd.PersistentFlags().BoolVar(&noTUIFlag, "no-tui", false, "disable the interactive view even on a terminal")

	return cmd
}

// loadConfig resolves configuration for the target directory, honoring an
// explicit --config path.
func loadConfig(dir string) (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	return config.LoadFromDir(dir)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
