package mysql

import (
	"context"

	tnplDomain "sponsorhub-backend/internal/domain/tnpl"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ObligationRepository struct{ db *gorm.DB }

func NewObligationRepository(db *gorm.DB) *ObligationRepository {
	return &ObligationRepository{db: db}
}

func (r *ObligationRepository) Create(ctx context.Context, o *tnplDomain.Obligation) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ObligationRepository) Save(ctx context.Context, o *tnplDomain.Obligation) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ObligationRepository) GetByObligationID(ctx context.Context, obligationID string) (*tnplDomain.Obligation, error) {
	var out tnplDomain.Obligation
	res := r.db.WithContext(ctx).Where("obligation_id = ?", obligationID).First(&out)
	return &out, res.Error
}

func (r *ObligationRepository) GetByObligationIDForUpdate(ctx context.Context, obligationID string) (*tnplDomain.Obligation, error) {
	var out tnplDomain.Obligation
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("obligation_id = ?", obligationID).
		First(&out)
	return &out, res.Error
}

func (r *ObligationRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]tnplDomain.Obligation, error) {
	var out []tnplDomain.Obligation
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
