package main

import (
	"log/slog"
	"os"
	"strings"

	"notecards/internal/config"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	clientCfg  config.ClientConfig
)

var rootCmd = &cobra.Command{
	Use:           "notecards",
	Short:         "Note cards backed by a REST notes server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			if p, err := config.ClientConfigPath(); err == nil {
				path = p
			}
		}
		cfg, err := config.LoadClientConfig(path)
		if err != nil {
			return err
		}
		clientCfg = cfg

		level := parseLevel(cfg.Logging.Level)
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default ~/.config/notecards/config.toml)")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
