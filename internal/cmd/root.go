package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayn2op/widgetlist"
	"github.com/ayn2op/widgetlist/internal/config"
	"github.com/ayn2op/widgetlist/internal/demo"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "widgetlist",
	Short: "Browse a scrollable list of variable-height items",
	Long: `Show the items of an item file in a scrollable list. The selected item is
highlighted and scrolled into view, and items cut off at the edges of the
terminal are drawn partially.

Without --config a week of todo cards is shown. Send SIGHUP to reload the
item file.`,
	Example: `
# Show the built-in example
widgetlist

# Show an item file with a scroll bar, starting with a filter
widgetlist --config items.json --scrollbar --filter work

# Log debug output to a file
widgetlist --debug --log-file /tmp/widgetlist.log
  `,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		query, _ := cmd.Flags().GetString("filter")
		logFile, _ := cmd.Flags().GetString("log-file")
		debug, _ := cmd.Flags().GetBool("debug")
		noTruncate, _ := cmd.Flags().GetBool("no-truncate")
		scrollBar, _ := cmd.Flags().GetBool("scrollbar")

		logger := setupLogger(logFile, debug)
		slog.SetDefault(logger)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts := options{noTruncate: noTruncate, scrollBar: scrollBar}
		opts.apply(&cfg)

		view := demo.NewView(cfg, logger)
		view.SetQuery(query)

		app := widgetlist.NewApplication().SetLogger(logger).SetRoot(view)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go watchReload(ctx, app, view, configPath, opts, logger)

		if err := app.Run(ctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	},
}

// options are command line overrides of the item file settings.
type options struct {
	noTruncate bool
	scrollBar  bool
}

func (o options) apply(cfg *config.Config) {
	if o.noTruncate {
		truncate := false
		cfg.Truncate = &truncate
	}
	if o.scrollBar {
		cfg.ScrollBar = true
	}
}

// watchReload reloads the item file on SIGHUP until ctx is done.
func watchReload(ctx context.Context, app *widgetlist.Application, view *demo.View, path string, opts options, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			cfg, err := config.Load(path)
			if err != nil {
				logger.Error("reload failed", "path", path, "err", err)
				continue
			}
			opts.apply(&cfg)
			app.QueueUpdateDraw(func() {
				view.SetConfig(cfg)
			})
		}
	}
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "Item file to show")
	rootCmd.Flags().StringP("filter", "f", "", "Initial filter query")
	rootCmd.Flags().String("log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolP("debug", "d", false, "Log debug output")
	rootCmd.Flags().Bool("no-truncate", false, "Draw cut-off items at full size instead of their clipped form")
	rootCmd.Flags().Bool("scrollbar", false, "Show a scroll bar")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
