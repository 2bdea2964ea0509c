package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	clierrors "github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/progress"
	"github.com/ariel-frischer/chlog/internal/report"
)

var (
	watchOutputFlag   string
	watchDebounceFlag time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the HTML report in sync with the changelog",
	Long: `Watch the changelog store and regenerate the HTML report whenever
it changes. Renders once immediately, then re-renders after every
add, edit, or remove until interrupted (Ctrl-C).

Rapid bursts of writes are debounced into a single render.

Examples:
  chlog watch
  chlog watch -o docs/changelog.html
  chlog watch --debounce 1s`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func init() {
	watchCmd.GroupID = GroupOutput
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutputFlag, "output", "o", "", "Report file to keep in sync (default from config)")
	watchCmd.Flags().DurationVar(&watchDebounceFlag, "debounce", 200*time.Millisecond, "Quiet period before re-rendering")
}

func runWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reportPath := cfg.ReportPath
	if watchOutputFlag != "" {
		reportPath = watchOutputFlag
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	caps := progress.DetectTerminalCapabilities()
	var spin *spinner.Spinner
	if caps.IsTTY && !cfg.Plain {
		symbols := progress.SelectSymbols(caps)
		spin = spinner.New(spinner.CharSets[symbols.SpinnerSet], 120*time.Millisecond)
		spin.Suffix = fmt.Sprintf(" watching %s", cfg.StorePath)
		spin.Start()
		defer spin.Stop()
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", cfg.StorePath)
	}

	onRender := func(path string, entries int) {
		if spin != nil {
			spin.Suffix = fmt.Sprintf(" watching %s (report: %d entries)", cfg.StorePath, entries)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d entries)\n", path, entries)
	}

	watcher := report.NewWatcher(cfg.StorePath, reportPath,
		report.Options{Title: cfg.ReportTitle},
		report.WithDebounce(watchDebounceFlag),
		report.WithOnRender(onRender),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return clierrors.ReportFailed(reportPath, err)
	}

	if spin != nil {
		spin.Stop()
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
	return nil
}
