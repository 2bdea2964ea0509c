// Package cli implements the chlog command-line interface using cobra.
// Commands register themselves with the root command via init().
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

// Command group IDs for the help output.
const (
	GroupEntries       = "entries"
	GroupOutput        = "output"
	GroupConfiguration = "configuration"
)

var (
	configFlag string
	storeFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Keep a personal changelog of what you created, edited, and deleted",
	Long: `chlog records dated notes about the changes you make: things you
created, edited, or deleted. Entries live in a plain YAML file inside
your project (.chlog/changelog.yaml by default), so the history travels
with the repository and diffs cleanly.

A static HTML report can be generated at any time, or kept up to date
automatically with 'chlog watch'.

Documentation: https://github.com/ariel-frischer/chlog`,
	Example: `  chlog add "Initial project scaffolding"
  chlog add "Reworked the importer" --type edited
  chlog list --last 10
  chlog edit ab12cd34 "Reworked the importer (now streaming)"
  chlog remove ab12cd34
  chlog report -o changelog.html
  chlog watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupEntries, Title: "Recording Changes:"},
		&cobra.Group{ID: GroupOutput, Title: "Viewing & Reporting:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"},
	)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path (default .chlog/config.yml)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Changelog store file (overrides config)")
}

// Execute runs the root command, prints any failure through the structured
// error formatter, and returns an ExitError carrying the process exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		return NewExitError(categoryExitCode(cliErr.Category))
	}

	clierrors.PrintSimpleError(err, clierrors.Runtime)
	return NewExitError(ExitFailure)
}

// categoryExitCode maps an error category to a process exit code.
func categoryExitCode(category clierrors.ErrorCategory) int {
	switch category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.NotFound:
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// loadConfig resolves configuration with the global flag overrides applied.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Configuration,
			"Run 'chlog config init' to create default configuration",
			"Or check the file named by --config",
		)
	}
	if storeFlag != "" {
		cfg.StorePath = storeFlag
	}
	return cfg, nil
}

// openStore opens the changelog store named by the resolved configuration.
func openStore(cfg *config.Configuration) (*changelog.Store, error) {
	store, err := changelog.Open(cfg.StorePath)
	if err != nil {
		return nil, clierrors.StoreUnreadable(cfg.StorePath, err)
	}
	return store, nil
}
