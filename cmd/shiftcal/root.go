package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "shiftcal",
		Short:         "Turn OCR results of shift schedules into calendar shifts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if ctx.verbose {
				level = zapcore.DebugLevel
			}
			ctx.logger = newLogger(cmd, level)

			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ctx.logger != nil {
				_ = ctx.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default: $SHIFTCAL_CONFIG or ~/.config/shiftcal/config.toml)")
	flags.IntVar(&ctx.yearFlag, "year", 0, "Year to place shifts in (default: $SHIFTCAL_YEAR or the current year)")
	flags.BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newRowsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// newLogger builds a production logger that writes to the command's
// stderr
func newLogger(cmd *cobra.Command, level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config.EncoderConfig),
		zapcore.AddSync(cmd.ErrOrStderr()),
		config.Level,
	)
	return zap.New(core)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
