package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/config"
)

var (
	configInitUserFlag  bool
	configInitForceFlag bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chlog configuration",
	Long: `Manage chlog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (CHLOG_*)
  2. Project config (.chlog/config.yml)
  3. User config (~/.config/chlog/config.yml)
  4. Built-in defaults`,
	Example: `  # Show the resolved configuration
  chlog config show

  # Create a project-level config file with defaults
  chlog config init`,
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the resolved configuration",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with commented defaults",
	Long: `Create a config file populated with the default settings and
comments describing each key.

By default the file is written to the project (.chlog/config.yml).
Use --user for a user-level config that applies to all projects.
Existing files are left unchanged unless --force is given.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitUserFlag, "user", false, "Write the user-level config instead of the project config")
	configInitCmd.Flags().BoolVarP(&configInitForceFlag, "force", "f", false, "Overwrite an existing config file")
}

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "store_path:   %s\n", cfg.StorePath)
	fmt.Fprintf(out, "report_path:  %s\n", cfg.ReportPath)
	fmt.Fprintf(out, "report_title: %s\n", cfg.ReportTitle)
	fmt.Fprintf(out, "list_limit:   %d\n", cfg.ListLimit)
	fmt.Fprintf(out, "plain:        %t\n", cfg.Plain)
	return nil
}

func runConfigInit(cmd *cobra.Command) error {
	path := config.ProjectConfigPath()
	if configInitUserFlag {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("resolving user config path: %w", err)
		}
		path = userPath
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Config written to %s\n", path)
	return nil
}
