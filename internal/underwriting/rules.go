package underwriting

const (
	minCreditScore      = 620
	maxDTI              = 0.4
	minIncome           = 30000
	minAge              = 21
	maxAge              = 65
	maxMonthlyIncomeMul = 8
)

// Rule is one eligibility check. Check reports whether the applicant passes.
type Rule struct {
	Check func(Applicant) bool
	Code  ReasonCode
	Text  string
}

// rules are evaluated in priority order; do not reorder.
var rules = []Rule{
	{
		Code:  CreditScoreLow,
		Text:  "Credit score below minimum threshold.",
		Check: func(a Applicant) bool { return a.CreditScore >= minCreditScore },
	},
	{
		Code:  DTIHigh,
		Text:  "Debt-to-income ratio above allowed maximum.",
		Check: func(a Applicant) bool { return a.DTI <= maxDTI },
	},
	{
		Code:  IncomeLow,
		Text:  "Income below minimum required level.",
		Check: func(a Applicant) bool { return a.Income >= minIncome },
	},
	{
		Code:  EmploymentUnstable,
		Text:  "Employment status not eligible.",
		Check: func(a Applicant) bool { return a.EmploymentStatus == Employed || a.EmploymentStatus == SelfEmployed },
	},
	{
		Code:  AgeOutOfRange,
		Text:  "Applicant age outside allowed range.",
		Check: func(a Applicant) bool { return a.Age >= minAge && a.Age <= maxAge },
	},
	{
		Code:  AffordabilityFail,
		Text:  "Requested loan amount not affordable given income.",
		Check: affordable,
	},
}

// affordable caps the loan at 8x the estimated monthly income. The division is
// unrounded float math so borderline cases compare exactly.
func affordable(a Applicant) bool {
	monthly := float64(a.Income) / 12
	return float64(a.LoanAmount) <= maxMonthlyIncomeMul*monthly
}

// Rules returns a copy of the rules in evaluation order
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// ReasonCodes returns every reason code a result can carry, declines first
func ReasonCodes() []ReasonCode {
	codes := make([]ReasonCode, 0, len(rules)+1)
	for _, r := range rules {
		codes = append(codes, r.Code)
	}
	return append(codes, Approved)
}

// ReasonText returns the human-readable text for code, or "" if code is unknown
func ReasonText(code ReasonCode) string {
	if code == Approved {
		return approvedText
	}
	for _, r := range rules {
		if r.Code == code {
			return r.Text
		}
	}
	return ""
}

// Evaluate runs the rules against a and returns exactly one result.
// Evaluation stops at the first failing rule.
func Evaluate(a Applicant) Result {
	for _, r := range rules {
		if !r.Check(a) {
			return Result{
				ApplicationID: a.ApplicationID,
				Decision:      Decline,
				ReasonCode:    r.Code,
				ReasonText:    r.Text,
			}
		}
	}
	return Result{
		ApplicationID: a.ApplicationID,
		Decision:      Approve,
		ReasonCode:    Approved,
		ReasonText:    approvedText,
	}
}
