package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bloonsbench/sol/internal/config"
	"github.com/bloonsbench/sol/internal/observability"
)

var (
	cfgFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:           "solsave",
	Short:         "Decode and re-encode Flash SOL game saves",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			observability.Initialize(config.LoggerConfig{Level: "info", Format: "console"})
			return err
		}
		appConfig = cfg
		observability.Initialize(cfg.Logger)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./solsave.yaml)")
}

func writeDocument(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
