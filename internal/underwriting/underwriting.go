// Package underwriting evaluates loan applicants against a fixed, ordered set of
// eligibility rules. The first failing rule decides the decline reason.
package underwriting

// Decision is the outcome of evaluating an applicant
type Decision string

const (
	Approve Decision = "APPROVE"
	Decline Decision = "DECLINE"
)

func (d Decision) String() string { return string(d) }

// ReasonCode identifies the rule that decided a result, or APPROVED
type ReasonCode string

const (
	CreditScoreLow     ReasonCode = "CREDIT_SCORE_LOW"
	DTIHigh            ReasonCode = "DTI_HIGH"
	IncomeLow          ReasonCode = "INCOME_LOW"
	EmploymentUnstable ReasonCode = "EMPLOYMENT_UNSTABLE"
	AgeOutOfRange      ReasonCode = "AGE_OUT_OF_RANGE"
	AffordabilityFail  ReasonCode = "AFFORDABILITY_FAIL"
	Approved           ReasonCode = "APPROVED"
)

func (c ReasonCode) String() string { return string(c) }

const approvedText = "All underwriting rules satisfied."

// Employment statuses produced by the generator. Anything else is ineligible.
const (
	Employed     = "employed"
	SelfEmployed = "self-employed"
	Unemployed   = "unemployed"
)

// Applicant is a single loan application as read from a batch
type Applicant struct {
	EmploymentStatus string
	ApplicationID    int
	CreditScore      int
	Income           int
	Age              int
	LoanAmount       int
	DTI              float64
}

// Result is the decision reached for one applicant
type Result struct {
	Decision      Decision
	ReasonCode    ReasonCode
	ReasonText    string
	ApplicationID int
}

// Approved reports whether the applicant was approved
func (r Result) Approved() bool {
	return r.Decision == Approve
}
