package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/config"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/logging"
	"github.com/wizzomafizzo/underwrite/internal/prompt"
)

// dependencies are the outside resources commands touch, swapped out in tests
type dependencies struct {
	fs afero.Fs
	// logWriter receives log entries. Nil means a rotated file in the data dir.
	logWriter   io.Writer
	newPrompter func() prompt.Prompter
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return createRootCommand(&dependencies{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
	})
}

func createRootCommand(deps *dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Synthetic loan applicant generator and underwriting evaluator",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Echo log output to stderr")

	rootCmd.AddCommand(
		createInitCommand(deps),
		createValidateCommand(deps),
		createGenerateCommand(deps),
		createEvaluateCommand(deps),
		createCheckCommand(deps),
		createRulesCommand(),
	)

	return rootCmd
}

// loadConfig reads the config named by --config. When the flag was left at its
// default and the file does not exist, defaults plus environment overrides are used.
func loadConfig(cmd *cobra.Command, deps *dependencies) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(deps.fs, configPath)
	if errors.Is(err, iofs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.FromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, nil
}

// setupLogging attaches a logger tagged with a fresh run id to the command context
func setupLogging(cmd *cobra.Command, deps *dependencies, cfg *config.Config) (context.Context, error) {
	level, err := cfg.Logging.ZerologLevel()
	if err != nil {
		return nil, err
	}

	var console io.Writer
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		console = cmd.ErrOrStderr()
	}

	ctx, err := logging.New(cmd.Context(), deps.fs, logging.Config{
		Writer:     deps.logWriter,
		Console:    console,
		RunID:      uuid.NewString(),
		Level:      level,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return ctx, nil
}
