package tnpl

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrLoanNotFound       = errors.New("loan not found")
	ErrObligationNotFound = errors.New("repayment obligation not found")
	ErrNotApproved        = errors.New("loan is not open for funding")
	ErrInvalidTransition  = errors.New("invalid loan state transition")
	ErrOverfunded         = errors.New("contribution exceeds remaining loan amount")
	ErrAlreadyCompleted   = errors.New("repayment obligation already completed")
	ErrUnknownPlan        = errors.New("unknown repayment plan")
)

type Status string

const (
	StatusPendingReview   Status = "pending_review"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusFunded          Status = "funded"
	StatusRepaymentActive Status = "repayment_active"
	StatusCompleted       Status = "completed"
)

type Plan string

const (
	PlanLumpSum      Plan = "lump_sum"
	PlanInstallments Plan = "installments"
	PlanPercentage   Plan = "percentage_of_earnings"
)

type ObligationStatus string

const (
	ObligationPending    ObligationStatus = "pending"
	ObligationCompleted  ObligationStatus = "completed"
	ObligationPercentage ObligationStatus = "percentage_based"
)

// Loan is a Train-Now-Pay-Later application. FundingProgress never
// exceeds Amount; crossing the threshold moves the loan to funded and
// creates its repayment schedule in the same transaction.
type Loan struct {
	ID                  uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID              string         `gorm:"size:32;uniqueIndex:ux_tnpl_loans_loan_id" json:"loan_id"`
	AthleteID           string         `gorm:"size:32;index:idx_tnpl_loans_athlete" json:"athlete_id"`
	Amount              float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose             string         `gorm:"type:text" json:"purpose"`
	TrainingDuration    string         `gorm:"size:64" json:"training_duration"`
	TrainingInstitution string         `gorm:"size:128" json:"training_institution"`
	RepaymentPlan       Plan           `gorm:"type:enum('lump_sum','installments','percentage_of_earnings')" json:"repayment_plan"`
	RepaymentMethod     string         `gorm:"size:64" json:"repayment_method"`
	Status              Status         `gorm:"type:enum('pending_review','approved','rejected','funded','repayment_active','completed');default:'pending_review'" json:"status"`
	FundingProgress     float64        `gorm:"type:decimal(18,2);default:0" json:"funding_progress"`
	StatusUpdatedAt     time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "tnpl_loans" }

// Contribution is a single brand's funding of a loan. Immutable once
// created; its amount is folded into the parent loan's FundingProgress.
type Contribution struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	ContributionID string    `gorm:"size:32;uniqueIndex:ux_tnpl_contributions_id" json:"contribution_id"`
	LoanID         uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	FunderID       string    `gorm:"size:32;index:idx_tnpl_contributions_funder" json:"funder_id"`
	Amount         float64   `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentMethod  string    `gorm:"size:64" json:"payment_method"`
	PaymentRef     string    `gorm:"size:64" json:"payment_ref,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Contribution) TableName() string { return "tnpl_contributions" }

// Obligation is one scheduled repayment owed by the athlete.
type Obligation struct {
	ID            uint64           `gorm:"primaryKey;column:id" json:"-"`
	ObligationID  string           `gorm:"size:32;uniqueIndex:ux_tnpl_obligations_id" json:"obligation_id"`
	LoanID        uint64           `gorm:"column:loan_id;not null;index" json:"-"`
	AthleteID     string           `gorm:"size:32;index:idx_tnpl_obligations_athlete" json:"athlete_id"`
	Amount        float64          `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentMethod string           `gorm:"size:64" json:"payment_method"`
	Status        ObligationStatus `gorm:"type:enum('pending','completed','percentage_based');default:'pending'" json:"status"`
	DueDate       *time.Time       `gorm:"column:due_date" json:"due_date,omitempty"`
	PaidDate      *time.Time       `gorm:"column:paid_date" json:"paid_date,omitempty"`
	PaymentRef    string           `gorm:"size:64" json:"payment_ref,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Obligation) TableName() string { return "tnpl_obligations" }
