package cmd

import (
	"fmt"
	"os"

	"rein-stock/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rein-stock",
	Short: "REIN stock synchronization service",
	Long: `rein-stock mirrors the REIN ERP product catalog into a local stock snapshot.
It walks the signed, rate-limited product API, reports what changed since the
last run and serves the cached list over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors are printed with the console encoder and ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
