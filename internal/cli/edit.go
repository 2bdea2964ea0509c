package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

var editTypeFlag string

var editCmd = &cobra.Command{
	Use:   "edit <id> [\"<new description>\"]",
	Short: "Change the description or type of an existing entry",
	Long: `Change the description, the change type, or both for an existing
entry. The entry keeps its ID; its timestamp is refreshed to now.

At least one change must be given. IDs are the short codes shown in
the first column of 'chlog list'.

Examples:
  chlog edit ab12cd34 "Reworked the importer (now streaming)"
  chlog edit ab12cd34 --type deleted
  chlog edit ab12cd34 "Removed the importer" -t deleted`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		description := ""
		if len(args) == 2 {
			description = args[1]
		}
		return runEdit(cmd, args[0], description)
	},
}

func init() {
	editCmd.GroupID = GroupEntries
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editTypeFlag, "type", "t", "", "New change type: created, edited, or deleted")
}

func runEdit(cmd *cobra.Command, id, description string) error {
	if description == "" && editTypeFlag == "" {
		return clierrors.NothingToChange()
	}

	changeType, err := parseChangeTypeFlag(editTypeFlag, "")
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

	entry, err := store.Edit(id, changelog.Update{
		ChangeType:  changeType,
		Description: description,
	})
	if err != nil {
		return mapStoreError(err, cfg.StorePath)
	}

	opts := changelog.FormatOptions{Plain: cfg.Plain}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", changelog.FormatEntrySummary(entry, opts))
	return nil
}
