package mysql

import (
	"context"

	paymentDomain "sponsorhub-backend/internal/domain/payment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, t *paymentDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PaymentRepository) Save(ctx context.Context, t *paymentDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Transaction, error) {
	var out paymentDomain.Transaction
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*paymentDomain.Transaction, error) {
	var out paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("payment_id = ?", paymentID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByPayee(ctx context.Context, payeeID string) ([]paymentDomain.Transaction, error) {
	var out []paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("payee_id = ?", payeeID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListByPayer(ctx context.Context, payerID string) ([]paymentDomain.Transaction, error) {
	var out []paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("payer_id = ?", payerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
