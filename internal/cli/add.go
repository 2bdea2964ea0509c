package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var addTypeFlag string

var addCmd = &cobra.Command{
	Use:   "add \"<description>\"",
	Short: "Record a new changelog entry",
	Long: `Record a new changelog entry with the current timestamp.

The change type classifies what happened: created (something new),
edited (existing code modified), or deleted (code removed). The type
defaults to created.

Examples:
  chlog add "Initial project scaffolding"
  chlog add "Reworked the importer" --type edited
  chlog add "Dropped the legacy exporter" -t deleted`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args[0])
	},
}

func init() {
	addCmd.GroupID = GroupEntries
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addTypeFlag, "type", "t", "created", "Change type: created, edited, or deleted")
}

func runAdd(cmd *cobra.Command, description string) error {
	if strings.TrimSpace(description) == "" {
		return clierrors.BlankDescription()
	}

	changeType, err := parseChangeTypeFlag(addTypeFlag, changelog.ChangeCreated)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	entry, err := store.Add(changeType, description)
	if err != nil {
		return mapStoreError(err, cfg.StorePath)
	}

	opts := changelog.FormatOptions{Plain: cfg.Plain}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", changelog.FormatEntrySummary(entry, opts))
	return nil
}
