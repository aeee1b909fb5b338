package paymentmock

import (
	"context"

	domain "sponsorhub-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies payment.Repository.
// Only wire up the methods a test needs; the rest return context.Canceled.
type Repo struct {
	CreateFn                  func(ctx context.Context, t *domain.Transaction) error
	SaveFn                    func(ctx context.Context, t *domain.Transaction) error
	GetByPaymentIDFn          func(ctx context.Context, paymentID string) (*domain.Transaction, error)
	GetByPaymentIDForUpdateFn func(ctx context.Context, paymentID string) (*domain.Transaction, error)
	ListByPayeeFn             func(ctx context.Context, payeeID string) ([]domain.Transaction, error)
	ListByPayerFn             func(ctx context.Context, payerID string) ([]domain.Transaction, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByPayee(ctx context.Context, payeeID string) ([]domain.Transaction, error) {
	if m.ListByPayeeFn != nil {
		return m.ListByPayeeFn(ctx, payeeID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByPayer(ctx context.Context, payerID string) ([]domain.Transaction, error) {
	if m.ListByPayerFn != nil {
		return m.ListByPayerFn(ctx, payerID)
	}
	return nil, context.Canceled
}
