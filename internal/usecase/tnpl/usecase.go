package tnpl

import (
	"context"
	"errors"
	"time"

	"sponsorhub-backend/internal/domain/tnpl"
	"sponsorhub-backend/internal/domain/uow"
	"sponsorhub-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans       tnpl.LoanRepository
	obligations tnpl.ObligationRepository
	uow         uow.UnitOfWork
	now         func() time.Time
}

func NewUsecase(loans tnpl.LoanRepository, obligations tnpl.ObligationRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		loans:       loans,
		obligations: obligations,
		uow:         tx,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func parsePlan(s string) (tnpl.Plan, error) {
	switch tnpl.Plan(s) {
	case tnpl.PlanLumpSum, tnpl.PlanInstallments, tnpl.PlanPercentage:
		return tnpl.Plan(s), nil
	}
	return "", tnpl.ErrUnknownPlan
}

// Apply files a new loan application in pending_review.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.AthleteID == "" || in.Amount <= 0 {
		return nil, errors.New("invalid input")
	}
	plan, err := parsePlan(in.RepaymentPlan)
	if err != nil {
		return nil, err
	}

	l := &tnpl.Loan{
		LoanID:              id.NewID32(),
		AthleteID:           in.AthleteID,
		Amount:              in.Amount,
		Purpose:             in.Purpose,
		TrainingDuration:    in.TrainingDuration,
		TrainingInstitution: in.TrainingInstitution,
		RepaymentPlan:       plan,
		RepaymentMethod:     in.RepaymentMethod,
		Status:              tnpl.StatusPendingReview,
		StatusUpdatedAt:     u.now(),
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return loanDTO(l), nil
}

// Review settles a pending_review application one way or the other.
func (u *Usecase) Review(ctx context.Context, loanID string, approve bool) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *tnpl.Loan) error {
		if l.Status != tnpl.StatusPendingReview {
			return tnpl.ErrInvalidTransition
		}
		if approve {
			l.Status = tnpl.StatusApproved
		} else {
			l.Status = tnpl.StatusRejected
		}
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = loanDTO(l)
		return nil
	})
	if err != nil {
		return nil, mapLoanErr(err)
	}
	return dto, nil
}

// Contribute records a brand's funding of an approved loan. The whole
// sequence (insert contribution, bump funding progress, on reaching the
// target create the repayment schedule) runs in one
// row-locked transaction, so a racing contribution serializes behind
// the lock and sees the already-advanced status. The schedule is
// therefore created exactly once.
func (u *Usecase) Contribute(ctx context.Context, in ContributeInput) (*ContributeResult, error) {
	if in.FunderID == "" || in.Amount <= 0 {
		return nil, errors.New("invalid input")
	}
	var res *ContributeResult
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *tnpl.Loan) error {
		if l.Status != tnpl.StatusApproved {
			return tnpl.ErrNotApproved
		}
		if l.FundingProgress+in.Amount > l.Amount {
			return tnpl.ErrOverfunded
		}

		c := &tnpl.Contribution{
			ContributionID: id.NewID32(),
			LoanID:         l.ID,
			FunderID:       in.FunderID,
			Amount:         in.Amount,
			PaymentMethod:  in.PaymentMethod,
			PaymentRef:     in.PaymentRef,
		}
		if err := r.Contributions.Create(ctx, c); err != nil {
			return err
		}

		l.FundingProgress += in.Amount
		if l.FundingProgress >= l.Amount {
			l.Status = tnpl.StatusFunded
			obs, err := buildSchedule(l, u.now())
			if err != nil {
				return err
			}
			for i := range obs {
				if err := r.Obligations.Create(ctx, &obs[i]); err != nil {
					return err
				}
			}
			l.Status = tnpl.StatusRepaymentActive
		}
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		res = &ContributeResult{
			Contribution: *contributionDTO(c, l.LoanID),
			Loan:         *loanDTO(l),
		}
		return nil
	})
	if err != nil {
		return nil, mapLoanErr(err)
	}
	return res, nil
}

// CompleteRepayment marks one obligation paid and, when it was the last
// outstanding one, closes out the loan. The sibling check runs after
// every repayment since obligations complete independently over time.
func (u *Usecase) CompleteRepayment(ctx context.Context, obligationID, paymentRef string) (*ObligationDTO, error) {
	var dto *ObligationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Obligations.GetByObligationIDForUpdate(ctx, obligationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tnpl.ErrObligationNotFound
			}
			return err
		}
		if o.Status == tnpl.ObligationCompleted {
			return tnpl.ErrAlreadyCompleted
		}
		// Lock the parent loan too: two repayments finishing at once
		// must not both conclude "not done yet".
		l, err := r.Loans.GetByNumericIDForUpdate(ctx, o.LoanID)
		if err != nil {
			return mapLoanErr(err)
		}

		now := u.now()
		o.Status = tnpl.ObligationCompleted
		o.PaidDate = &now
		o.PaymentRef = paymentRef
		if err := r.Obligations.Save(ctx, o); err != nil {
			return err
		}

		siblings, err := r.Obligations.ListByLoanID(ctx, o.LoanID)
		if err != nil {
			return err
		}
		done := true
		for i := range siblings {
			if siblings[i].Status != tnpl.ObligationCompleted {
				done = false
				break
			}
		}
		if done {
			l.Status = tnpl.StatusCompleted
			l.StatusUpdatedAt = now
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}
		dto = obligationDTO(o, l.LoanID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Schedule lists the repayment obligations generated for a loan.
func (u *Usecase) Schedule(ctx context.Context, loanID string) ([]ObligationDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapLoanErr(err)
	}
	obs, err := u.obligations.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ObligationDTO, 0, len(obs))
	for i := range obs {
		out = append(out, *obligationDTO(&obs[i], l.LoanID))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, mapLoanErr(err)
	}
	return loanDTO(l), nil
}

func (u *Usecase) LoansByAthlete(ctx context.Context, athleteID string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByAthleteID(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *loanDTO(&ls[i]))
	}
	return out, nil
}

// Contributions lists the funding record of a loan.
func (u *Usecase) Contributions(ctx context.Context, loanID string) ([]ContributionDTO, error) {
	var out []ContributionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return mapLoanErr(err)
		}
		cs, err := r.Contributions.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]ContributionDTO, 0, len(cs))
		for i := range cs {
			out = append(out, *contributionDTO(&cs[i], l.LoanID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mapLoanErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tnpl.ErrLoanNotFound
	}
	return err
}

func loanDTO(l *tnpl.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:              l.LoanID,
		AthleteID:           l.AthleteID,
		Amount:              l.Amount,
		Purpose:             l.Purpose,
		TrainingDuration:    l.TrainingDuration,
		TrainingInstitution: l.TrainingInstitution,
		RepaymentPlan:       string(l.RepaymentPlan),
		RepaymentMethod:     l.RepaymentMethod,
		Status:              string(l.Status),
		FundingProgress:     l.FundingProgress,
		CreatedAt:           l.CreatedAt,
	}
}

func contributionDTO(c *tnpl.Contribution, loanID string) *ContributionDTO {
	return &ContributionDTO{
		ContributionID: c.ContributionID,
		LoanID:         loanID,
		FunderID:       c.FunderID,
		Amount:         c.Amount,
		PaymentMethod:  c.PaymentMethod,
		PaymentRef:     c.PaymentRef,
		CreatedAt:      c.CreatedAt,
	}
}

func obligationDTO(o *tnpl.Obligation, loanID string) *ObligationDTO {
	return &ObligationDTO{
		ObligationID:  o.ObligationID,
		LoanID:        loanID,
		AthleteID:     o.AthleteID,
		Amount:        o.Amount,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		DueDate:       o.DueDate,
		PaidDate:      o.PaidDate,
		PaymentRef:    o.PaymentRef,
	}
}
