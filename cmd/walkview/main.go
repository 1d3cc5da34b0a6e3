// SPDX-License-Identifier: MIT

// Command walkview builds graphs and animates DFS/BFS visitation orders,
// either in a browser (serve) or in the terminal (run).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/walkview/config"
)

type rootOptions struct {
	configPath string
	envFile    string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "walkview <command>",
		Short:         "Build graphs and watch DFS/BFS traversals step by step",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithEnvFile(opts.configPath, opts.envFile)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.cfg, opts.logger = cfg, logger
			slog.SetDefault(logger)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("WALKVIEW_CONFIG"), "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file with WALKVIEW_* variables (skipped when the default is absent)")

	cmd.AddCommand(newServeCmd(opts), newRunCmd(opts))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
