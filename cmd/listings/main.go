package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"listings/internal/config"
	"listings/internal/engine"
	"listings/internal/logging"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dataPath string
	logLevel string
	asJSON   bool

	logger *zap.Logger
}

// store loads the data file named by --data.
func (o *options) store() (*engine.Store, error) {
	return engine.LoadFile(o.dataPath, o.logger)
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "listings",
		Short: "Search, group and audit listing records",
		Long: `listings queries a JSON file of listing records.

Examples:
  listings search english
  listings group
  listings missing country --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.logLevel, cfg.LogDev)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", cfg.DataPath, "path to the listings JSON file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")

	rootCmd.AddCommand(
		newListCmd(opts),
		newSearchCmd(opts),
		newGroupCmd(opts),
		newMissingCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
