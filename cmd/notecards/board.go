package main

import (
	"context"
	"os/signal"
	"syscall"

	"notecards/internal/cards"
	"notecards/internal/cards/client"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	token     string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Edit note cards interactively",
	Long: `Board opens an empty card board. Cards are saved to the notes server on
request and are gone from the board when the command exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := clientCfg.Server.URL
		if serverURL != "" {
			url = serverURL
		}
		tok := clientCfg.Server.Token
		if token != "" {
			tok = token
		}

		api, err := client.New(url, client.WithToken(tok), client.WithTimeout(clientCfg.RequestTimeout()))
		if err != nil {
			return err
		}
		ctrl := cards.NewController(cards.NewBoard(), api)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return cards.RunShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), ctrl)
	},
}

func init() {
	boardCmd.Flags().StringVar(&serverURL, "server", "", "Notes server base URL")
	boardCmd.Flags().StringVar(&token, "token", "", "Bearer token sent with every request")
	rootCmd.AddCommand(boardCmd)
}
