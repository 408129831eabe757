package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/config"
)

// createInitCommand creates the init command which writes a default config file.
func createInitCommand(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			force, _ := cmd.Flags().GetBool("force")

			exists, err := afero.Exists(deps.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to check config file: %w", err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return err
			}
			if err := afero.WriteFile(deps.fs, configPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	return cmd
}
