package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/report"
)

var (
	reportOutputFlag string
	reportTitleFlag  string
	reportStdoutFlag bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the static HTML changelog report",
	Long: `Generate a self-contained static HTML report of all entries,
newest first. Entry text is escaped, so notes containing markup
render as text.

The output path and title come from configuration and can be
overridden per invocation.

Examples:
  chlog report
  chlog report -o docs/changelog.html
  chlog report --title "Release Notes"
  chlog report --stdout > /tmp/preview.html`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	reportCmd.GroupID = GroupOutput
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutputFlag, "output", "o", "", "Report file path (overrides config)")
	reportCmd.Flags().StringVar(&reportTitleFlag, "title", "", "Report heading (overrides config)")
	reportCmd.Flags().BoolVar(&reportStdoutFlag, "stdout", false, "Write the HTML to stdout instead of a file")
}

func runReport(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	title := cfg.ReportTitle
	if reportTitleFlag != "" {
		title = reportTitleFlag
	}
	opts := report.Options{Title: title}
	entries := store.List()

	if reportStdoutFlag {
		html, err := report.Render(entries, opts)
		if err != nil {
			return clierrors.ReportFailed("stdout", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	path := cfg.ReportPath
	if reportOutputFlag != "" {
		path = reportOutputFlag
	}

	if err := report.WriteFile(path, entries, opts); err != nil {
		return clierrors.ReportFailed(path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d entries)\n", path, store.Len())
	return nil
}
