package tnpl

import "context"

type LoanRepository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByNumericIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	ListByAthleteID(ctx context.Context, athleteID string) ([]Loan, error)
}

type ContributionRepository interface {
	Create(ctx context.Context, c *Contribution) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Contribution, error)
}

type ObligationRepository interface {
	Create(ctx context.Context, o *Obligation) error
	Save(ctx context.Context, o *Obligation) error
	GetByObligationID(ctx context.Context, obligationID string) (*Obligation, error)
	GetByObligationIDForUpdate(ctx context.Context, obligationID string) (*Obligation, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Obligation, error)
}
