package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/pipeline"
	"github.com/wizzomafizzo/underwrite/internal/report"
)

// createEvaluateCommand creates the evaluate command which runs every batch through the rules.
func createEvaluateCommand(deps *dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate all batches and write the decision results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, deps)
			if err != nil {
				return err
			}

			ctx, err := setupLogging(cmd, deps, cfg)
			if err != nil {
				return err
			}

			run, err := pipeline.New(deps.fs, pipeline.Options{
				DataDir:    cfg.DataDir,
				OutputPath: cfg.OutputPath(),
				Batches:    cfg.Batches,
			}).Run(ctx)
			if err != nil {
				return err
			}

			report.New(cmd.OutOrStdout()).Run(run)
			return nil
		},
	}
}
