package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var migrateFromFlag string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import entries from a legacy changelog.json file",
	Long: `Import entries from the legacy changelog.json format
(a flat array of {timestamp, operation, text} records).

Imported entries get fresh IDs but keep their original timestamps
and change types. The JSON file is left untouched; run the command
once and delete the old file when you are satisfied.

Examples:
  chlog migrate
  chlog migrate --from old/changelog.json`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	migrateCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateFromFlag, "from", changelog.DefaultLegacyPath, "Legacy JSON changelog to import")
}

func runMigrate(cmd *cobra.Command) error {
	if _, err := os.Stat(migrateFromFlag); os.IsNotExist(err) {
		return clierrors.LegacyFileNotFound(migrateFromFlag)
	}

	entries, err := changelog.LoadLegacyJSON(migrateFromFlag)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Storage,
			fmt.Sprintf("cannot import %s", migrateFromFlag),
			"Check the file is a JSON array of {timestamp, operation, text} records",
		)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No entries found in %s, nothing to import.\n", migrateFromFlag)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	count, err := store.ImportLegacy(entries)
	if err != nil {
		return mapStoreError(err, cfg.StorePath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s into %s\n", count, migrateFromFlag, cfg.StorePath)
	return nil
}
