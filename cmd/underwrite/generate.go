package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/batch"
	"github.com/wizzomafizzo/underwrite/internal/logging"
	"github.com/wizzomafizzo/underwrite/internal/report"
)

// createGenerateCommand creates the generate command which writes synthetic batches.
func createGenerateCommand(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic applicant batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, deps)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("batches") {
				cfg.Batches, _ = cmd.Flags().GetInt("batches")
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, err := setupLogging(cmd, deps, cfg)
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				if seed, err = batch.NewSeed(); err != nil {
					return err
				}
			}
			logging.Get(ctx).Info().Int64("seed", seed).Msg("Generating batches")

			gen := batch.NewGenerator(deps.fs, cfg.DataDir, cfg.Batches, cfg.BatchSize, seed)
			paths, err := gen.Generate(ctx)
			if err != nil {
				return fmt.Errorf("failed to generate batches: %w", err)
			}

			report.New(cmd.OutOrStdout()).Generated(paths, cfg.BatchSize)
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Generator seed, 0 picks a random seed")
	cmd.Flags().Int("batches", 0, "Number of batches, overrides config")
	cmd.Flags().Int("batch-size", 0, "Applicants per batch, overrides config")

	return cmd
}
