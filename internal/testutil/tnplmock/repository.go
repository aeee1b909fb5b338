package tnplmock

import (
	"context"

	domain "sponsorhub-backend/internal/domain/tnpl"
)

// Function-backed mocks for the three tnpl repositories. Unwired
// methods return context.Canceled so a test fails loudly if it hits a
// path it didn't set up.

type LoanRepo struct {
	CreateFn                  func(ctx context.Context, l *domain.Loan) error
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn             func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn    func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByNumericIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListByAthleteIDFn         func(ctx context.Context, athleteID string) ([]domain.Loan, error)
}

var _ domain.LoanRepository = (*LoanRepo)(nil)

func (m *LoanRepo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *LoanRepo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *LoanRepo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *LoanRepo) GetByNumericIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByNumericIDForUpdateFn != nil {
		return m.GetByNumericIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *LoanRepo) ListByAthleteID(ctx context.Context, athleteID string) ([]domain.Loan, error) {
	if m.ListByAthleteIDFn != nil {
		return m.ListByAthleteIDFn(ctx, athleteID)
	}
	return nil, context.Canceled
}

type ContributionRepo struct {
	CreateFn       func(ctx context.Context, c *domain.Contribution) error
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Contribution, error)
}

var _ domain.ContributionRepository = (*ContributionRepo)(nil)

func (m *ContributionRepo) Create(ctx context.Context, c *domain.Contribution) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *ContributionRepo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Contribution, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

type ObligationRepo struct {
	CreateFn                     func(ctx context.Context, o *domain.Obligation) error
	SaveFn                       func(ctx context.Context, o *domain.Obligation) error
	GetByObligationIDFn          func(ctx context.Context, obligationID string) (*domain.Obligation, error)
	GetByObligationIDForUpdateFn func(ctx context.Context, obligationID string) (*domain.Obligation, error)
	ListByLoanIDFn               func(ctx context.Context, loanNumericID uint64) ([]domain.Obligation, error)
}

var _ domain.ObligationRepository = (*ObligationRepo)(nil)

func (m *ObligationRepo) Create(ctx context.Context, o *domain.Obligation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}
func (m *ObligationRepo) Save(ctx context.Context, o *domain.Obligation) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}
func (m *ObligationRepo) GetByObligationID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	if m.GetByObligationIDFn != nil {
		return m.GetByObligationIDFn(ctx, obligationID)
	}
	return nil, context.Canceled
}
func (m *ObligationRepo) GetByObligationIDForUpdate(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	if m.GetByObligationIDForUpdateFn != nil {
		return m.GetByObligationIDForUpdateFn(ctx, obligationID)
	}
	return nil, context.Canceled
}
func (m *ObligationRepo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Obligation, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}
