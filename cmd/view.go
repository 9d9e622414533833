package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paradigm/internal/controller"
	"github.com/mouse-blink/paradigm/internal/domain"
	m "github.com/mouse-blink/paradigm/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "View a previously saved scan report",
		Long:  "View a scan report previously saved with --output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useTTY := !noTUIFlag && controller.IsTTY(cmd.OutOrStdout())
			ui := controller.NewUI(cmd, useTTY)
			workflow := domain.NewWorkflow(fsAdapter, tsAdapter, reportStore, ui)

			return workflow.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
