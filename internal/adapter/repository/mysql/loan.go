package mysql

import (
	"context"

	tnplDomain "sponsorhub-backend/internal/domain/tnpl"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *tnplDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *tnplDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*tnplDomain.Loan, error) {
	var out tnplDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*tnplDomain.Loan, error) {
	var out tnplDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByNumericIDForUpdate(ctx context.Context, id uint64) (*tnplDomain.Loan, error) {
	var out tnplDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByAthleteID(ctx context.Context, athleteID string) ([]tnplDomain.Loan, error) {
	var out []tnplDomain.Loan
	res := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
