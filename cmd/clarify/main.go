// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the clarify CLI: the HTTP service
// that turns uploaded documents into learning artifacts, plus a one-shot
// local pipeline runner.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/clarifyhq/clarify/internal/secrets"
	"github.com/clarifyhq/clarify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the clarify CLI.
var rootCmd = &cobra.Command{
	Use:   "clarify",
	Short: "Document-to-learning-artifacts pipeline service",
	Long: `clarify turns a document into a set of learning artifacts: a simplified
explanation, a deep-dive analysis, a visual diagram, flashcards, and
curated video recommendations.

The serve subcommand runs the HTTP service; the process subcommand runs
the pipeline once against a local file and prints the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./clarify.yaml or ~/.config/clarify/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("clarify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "clarify"))
		}
	}

	viper.SetEnvPrefix("CLARIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the effective configuration: config file and
// environment via viper, defaults, then secrets for the API keys.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	cfg.ApplyDefaults()

	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = loadedSecrets[secrets.GroqAPIKey]
	}
	return cfg, nil
}

// newLogger builds the process-wide zap logger. Mode "debug" selects the
// development config.
func newLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if mode == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
