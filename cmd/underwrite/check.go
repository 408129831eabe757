package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/underwrite/internal/batch"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/prompt"
	"github.com/wizzomafizzo/underwrite/internal/report"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// createCheckCommand creates the check command which evaluates a single applicant.
func createCheckCommand(deps *dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a single applicant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				applicant underwriting.Applicant
				err       error
			)

			if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
				prompter := deps.newPrompter()
				defer func() { _ = prompter.Close() }()
				applicant, err = prompt.ApplicantInput(prompter, cmd.ErrOrStderr())
			} else {
				applicant, err = applicantFromFlags(cmd)
			}
			if err != nil {
				return err
			}

			report.New(cmd.OutOrStdout()).Decision(underwriting.Evaluate(applicant))
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "Prompt for each applicant field")
	for _, field := range constants.ApplicantHeader() {
		cmd.Flags().String(flagName(field), "", "Applicant "+strings.ReplaceAll(field, "_", " "))
	}

	return cmd
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func applicantFromFlags(cmd *cobra.Command) (underwriting.Applicant, error) {
	values := make(map[string]string)
	var missing []string
	for _, field := range constants.ApplicantHeader() {
		name := flagName(field)
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
			continue
		}
		values[field], _ = cmd.Flags().GetString(name)
	}
	if len(missing) > 0 {
		return underwriting.Applicant{}, fmt.Errorf("missing flags %s (or use --interactive)", strings.Join(missing, ", "))
	}
	return batch.ParseApplicant(values)
}
