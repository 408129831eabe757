package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/report"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// createRulesCommand creates the rules command which lists rules in evaluation order
func createRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List underwriting rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report.New(cmd.OutOrStdout()).Rules(underwriting.Rules())
			return nil
		},
	}
}
