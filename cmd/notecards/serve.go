package main

import (
	"context"
	"os/signal"
	"syscall"

	"notecards/internal/config"
	"notecards/internal/server"

	"github.com/spf13/cobra"
)

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the notes API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&envFile, "env-file", "", "Env file to load (default .env)")
	rootCmd.AddCommand(serveCmd)
}
