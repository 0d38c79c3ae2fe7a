package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/compscope/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "compscope",
	Short: "US compensation research across public wage sources",
	Long:  "Resolves a job title and location to SOC occupation and OEWS geography, queries BLS OEWS, JSearch postings, and USAJobs concurrently, and blends the local medians into one estimate.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
