package payment

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	Save(ctx context.Context, t *Transaction) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Transaction, error)
	// GetByPaymentIDForUpdate locks the row for the duration of the
	// surrounding transaction.
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Transaction, error)
	ListByPayee(ctx context.Context, payeeID string) ([]Transaction, error)
	ListByPayer(ctx context.Context, payerID string) ([]Transaction, error)
}
