package cli

import (
	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit the changelog interactively",
	Long: `Open an interactive terminal interface for browsing, adding,
editing, and deleting entries. The HTML report can be regenerated
from inside the interface with 'g'.

Examples:
  chlog tui
  chlog tui --store notes/changes.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	tuiCmd.GroupID = GroupEntries
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := tui.Run(cfg.StorePath, cfg.ReportPath, cfg.ReportTitle); err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	return nil
}
