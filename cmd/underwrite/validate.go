package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/config"
)

// createValidateCommand creates the validate command.
func createValidateCommand(deps *dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("config flag error: %w", err)
			}

			if _, err := config.Load(deps.fs, configPath); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %s\n", configPath)
			return nil
		},
	}
}
