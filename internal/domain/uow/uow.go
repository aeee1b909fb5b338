package uow

import (
	"context"

	"sponsorhub-backend/internal/domain/payment"
	"sponsorhub-backend/internal/domain/tnpl"
)

type Repos struct {
	Payments      payment.Repository
	Loans         tnpl.LoanRepository
	Contributions tnpl.ContributionRepository
	Obligations   tnpl.ObligationRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *tnpl.Loan) error) error
	// convenience: lock the payment row first, then pass it in
	WithinPaymentTx(ctx context.Context, paymentID string, fn func(r Repos, t *payment.Transaction) error) error
}
