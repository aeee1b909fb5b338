package tnpl

import "time"

type ApplyInput struct {
	AthleteID           string  `json:"athlete_id"`
	Amount              float64 `json:"amount"`
	Purpose             string  `json:"purpose"`
	TrainingDuration    string  `json:"training_duration"`
	TrainingInstitution string  `json:"training_institution"`
	RepaymentPlan       string  `json:"repayment_plan"`
	RepaymentMethod     string  `json:"repayment_method"`
}

type ContributeInput struct {
	LoanID        string  `json:"-"`
	FunderID      string  `json:"funder_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentRef    string  `json:"payment_ref"`
}

type LoanDTO struct {
	LoanID              string    `json:"loan_id"`
	AthleteID           string    `json:"athlete_id"`
	Amount              float64   `json:"amount"`
	Purpose             string    `json:"purpose"`
	TrainingDuration    string    `json:"training_duration"`
	TrainingInstitution string    `json:"training_institution"`
	RepaymentPlan       string    `json:"repayment_plan"`
	RepaymentMethod     string    `json:"repayment_method"`
	Status              string    `json:"status"`
	FundingProgress     float64   `json:"funding_progress"`
	CreatedAt           time.Time `json:"created_at"`
}

type ContributionDTO struct {
	ContributionID string    `json:"contribution_id"`
	LoanID         string    `json:"loan_id"`
	FunderID       string    `json:"funder_id"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"payment_method"`
	PaymentRef     string    `json:"payment_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ObligationDTO struct {
	ObligationID  string     `json:"obligation_id"`
	LoanID        string     `json:"loan_id"`
	AthleteID     string     `json:"athlete_id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentRef    string     `json:"payment_ref,omitempty"`
}

// ContributeResult reports both sides of a funding action: the stored
// contribution and the loan as updated by it.
type ContributeResult struct {
	Contribution ContributionDTO `json:"contribution"`
	Loan         LoanDTO         `json:"loan"`
}
