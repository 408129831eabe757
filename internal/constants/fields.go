package constants

// Applicant batch CSV columns
const (
	FieldApplicationID    = "application_id"
	FieldCreditScore      = "credit_score"
	FieldIncome           = "income"
	FieldDTI              = "dti"
	FieldEmploymentStatus = "employment_status"
	FieldAge              = "age"
	FieldLoanAmount       = "loan_amount"
)

// Decision results CSV columns
const (
	FieldDecision   = "decision"
	FieldReasonCode = "reason_code"
	FieldReasonText = "reason_text"
)

// ApplicantHeader returns the batch CSV header in column order
func ApplicantHeader() []string {
	return []string{
		FieldApplicationID,
		FieldCreditScore,
		FieldIncome,
		FieldDTI,
		FieldEmploymentStatus,
		FieldAge,
		FieldLoanAmount,
	}
}

// ResultHeader returns the results CSV header in column order
func ResultHeader() []string {
	return []string{
		FieldApplicationID,
		FieldDecision,
		FieldReasonCode,
		FieldReasonText,
	}
}
