package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

var removeYesFlag bool

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry from the changelog",
	Long: `Delete an entry from the changelog permanently.

This removes the record itself. To note that a piece of code was
deleted while keeping the history, use 'chlog add --type deleted'
or retag the entry with 'chlog edit --type deleted' instead.

Prompts for confirmation unless --yes is given.

Examples:
  chlog remove ab12cd34
  chlog rm ab12cd34 --yes`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(cmd, args[0])
	},
}

func init() {
	removeCmd.GroupID = GroupEntries
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVarP(&removeYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, id string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	entry, err := store.Get(id)
	if err != nil {
		return mapStoreError(err, cfg.StorePath)
	}

	opts := changelog.FormatOptions{Plain: cfg.Plain}
	if !removeYesFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? [y/N]: ", changelog.FormatEntrySummary(entry, opts))
		if !confirm(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := store.Remove(id); err != nil {
		return mapStoreError(err, cfg.StorePath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", changelog.FormatEntrySummary(entry, opts))
	return nil
}

// confirm reads a single line from the command's input and reports whether
// the user answered yes. Anything other than y/yes declines.
func confirm(cmd *cobra.Command) bool {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
