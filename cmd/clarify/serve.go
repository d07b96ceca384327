// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clarifyhq/clarify/internal/extract"
	"github.com/clarifyhq/clarify/internal/ingest"
	"github.com/clarifyhq/clarify/internal/pipeline"
	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/internal/server"
	"github.com/clarifyhq/clarify/internal/tasks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Serve starts the HTTP service: document upload and direct-text
processing, the session chat endpoint, and a health check. The server
shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := newLogger(cfg.Server.Mode)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.AI.APIKey == "" {
			log.Warnw("no Groq API key configured; provider calls will fail",
				"hint", "put the key in .secrets/groq-api-key or set ai.api_key")
		}

		gen := provider.NewGroqClient(cfg.AI, log)
		img := provider.NewNoopImageGenerator(log)

		taskSet := tasks.Filter(tasks.DefaultSet(gen, img, cfg.Tasks, log), cfg.Tasks.Enabled)
		pipe := pipeline.New(ingest.New(cfg.Ingest), extract.NewAnalyzer(gen, log), taskSet, log)

		srv := server.New(cfg, pipe, gen, log)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "TCP port to listen on")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
