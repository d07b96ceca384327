// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/clarifyhq/clarify/internal/extract"
	"github.com/clarifyhq/clarify/internal/ingest"
	"github.com/clarifyhq/clarify/internal/pipeline"
	"github.com/clarifyhq/clarify/internal/provider"
	"github.com/clarifyhq/clarify/internal/tasks"
)

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Run the pipeline once against a local document",
	Long: `Process runs the full pipeline on a local PDF or text file and writes
the aggregated result as YAML to stdout, or to a file with --out. The
input file is left untouched.`,
	Args: cobra.ExactArgs(1),
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

		gen := provider.NewGroqClient(cfg.AI, log)
		img := provider.NewNoopImageGenerator(log)

		taskSet := tasks.Filter(tasks.DefaultSet(gen, img, cfg.Tasks, log), cfg.Tasks.Enabled)
		pipe := pipeline.New(ingest.New(cfg.Ingest), extract.NewAnalyzer(gen, log), taskSet, log)

		result, err := pipe.ProcessFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("processing %s: %w", args[0], err)
		}

		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}

		outPath, _ := cmd.Flags().GetString("out")
		if outPath == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		fmt.Fprintf(os.Stderr, "result written to %s\n", outPath)
		return nil
	},
}

func init() {
	processCmd.Flags().String("out", "", "write the YAML result to this file instead of stdout")

	rootCmd.AddCommand(processCmd)
}
