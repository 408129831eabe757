package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/underwrite/internal/batch"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// maxAttempts bounds how often a single field is asked again after a bad answer
const maxAttempts = 3

var labels = map[string]string{
	constants.FieldApplicationID:    "Application ID:",
	constants.FieldCreditScore:      "Credit score:",
	constants.FieldIncome:           "Annual income:",
	constants.FieldDTI:              "Debt-to-income ratio:",
	constants.FieldEmploymentStatus: "Employment status:",
	constants.FieldAge:              "Age:",
	constants.FieldLoanAmount:       "Loan amount:",
}

var statuses = []string{underwriting.Employed, underwriting.SelfEmployed, underwriting.Unemployed}

// ApplicantInput asks for every applicant field in batch column order and parses the
// answers the same way batch files are parsed. Invalid answers are reported on out
// and asked again.
func ApplicantInput(prompter Prompter, out io.Writer) (underwriting.Applicant, error) {
	values := make(map[string]string, len(labels))
	for _, field := range constants.ApplicantHeader() {
		answer, err := askField(prompter, field)
		if err != nil {
			return underwriting.Applicant{}, err
		}
		values[field] = answer
	}

	for attempt := 1; ; attempt++ {
		applicant, err := batch.ParseApplicant(values)
		if err == nil {
			return applicant, nil
		}

		var malformed *batch.MalformedRecordError
		if !errors.As(err, &malformed) || attempt >= maxAttempts {
			return underwriting.Applicant{}, err
		}

		_, _ = fmt.Fprintln(out, color.RedString("Invalid %s %q, try again", malformed.Field, malformed.Value))
		answer, err := askField(prompter, malformed.Field)
		if err != nil {
			return underwriting.Applicant{}, err
		}
		values[malformed.Field] = answer
	}
}

func askField(prompter Prompter, field string) (string, error) {
	label := labels[field]
	if field == constants.FieldEmploymentStatus {
		withCompletions(prompter, statuses)
		defer withCompletions(prompter, nil)
		label = fmt.Sprintf("Employment status (%s):", strings.Join(statuses, ", "))
	}

	answer, err := TextInputWithPrompter(prompter, label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
