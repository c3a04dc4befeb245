// Package cmd implements the printcost command line interface.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"printcost/internal/config"
	"printcost/internal/logging"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "printcost",
	Short: "Print job cost estimation",
	Long: `printcost estimates the production cost and sell price of print jobs:
imposition, paper, printing, binding, finishing, packing, freight, and
pricing, for one or more quantities at once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}
		config.Set(cfg)

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		return logging.Initialize(cfg.Logging)
	},
}

// Execute runs the root command
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".printcost.json"
	}
	return filepath.Join(home, ".printcost", "config.json")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.printcost/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
