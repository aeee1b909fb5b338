package mysql

import (
	"context"

	tnplDomain "sponsorhub-backend/internal/domain/tnpl"

	"gorm.io/gorm"
)

type ContributionRepository struct{ db *gorm.DB }

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, c *tnplDomain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributionRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]tnplDomain.Contribution, error) {
	var out []tnplDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
