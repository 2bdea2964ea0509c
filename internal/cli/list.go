package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
)

var (
	listLastFlag  int
	listPlainFlag bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show recorded entries, newest first",
	Long: `Show recorded entries as a table, newest first.

By default all entries are shown (or the configured list_limit).
Use --last to cap the count for the current invocation.

Examples:
  chlog list
  chlog list --last 10
  chlog list --plain`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func init() {
	listCmd.GroupID = GroupOutput
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listLastFlag, "last", 0, "Number of entries to show (0 = config default)")
	listCmd.Flags().BoolVar(&listPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runList(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	entries := changelog.SortedNewestFirst(store.List())
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries recorded yet. Add one with: chlog add \"<description>\"")
		return nil
	}

	limit := listLastFlag
	if limit == 0 {
		limit = cfg.ListLimit
	}
	total := len(entries)
	if limit > 0 && limit < total {
		entries = entries[:limit]
	}

	opts := changelog.FormatOptions{Plain: cfg.Plain || listPlainFlag}
	if err := changelog.FormatTable(entries, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}

	if len(entries) < total {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d entries shown. Use --last %d to see all)\n",
			len(entries), total, total)
	}

	return nil
}
