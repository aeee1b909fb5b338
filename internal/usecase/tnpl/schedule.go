package tnpl

import (
	"time"

	"sponsorhub-backend/internal/domain/tnpl"
	"sponsorhub-backend/pkg/id"
)

const (
	lumpSumDueMonths = 6
	installmentCount = 3
)

// buildSchedule derives the repayment obligations for a funded loan.
// Deterministic for a given loan and base time; the switch is
// exhaustive over the plan enum and refuses anything else rather than
// silently producing an empty schedule.
func buildSchedule(l *tnpl.Loan, base time.Time) ([]tnpl.Obligation, error) {
	switch l.RepaymentPlan {
	case tnpl.PlanLumpSum:
		due := base.AddDate(0, lumpSumDueMonths, 0)
		return []tnpl.Obligation{{
			ObligationID:  id.NewID32(),
			LoanID:        l.ID,
			AthleteID:     l.AthleteID,
			Amount:        l.Amount,
			PaymentMethod: l.RepaymentMethod,
			Status:        tnpl.ObligationPending,
			DueDate:       &due,
		}}, nil

	case tnpl.PlanInstallments:
		// Due dates are cumulative offsets from the same base instant:
		// +1, +2, +3 months. Amounts are a plain three-way division;
		// no remainder correction (see splitEvenly for the corrected
		// variant, deliberately unused here).
		out := make([]tnpl.Obligation, 0, installmentCount)
		due := base
		for i := 0; i < installmentCount; i++ {
			due = due.AddDate(0, 1, 0)
			d := due
			out = append(out, tnpl.Obligation{
				ObligationID:  id.NewID32(),
				LoanID:        l.ID,
				AthleteID:     l.AthleteID,
				Amount:        l.Amount / installmentCount,
				PaymentMethod: l.RepaymentMethod,
				Status:        tnpl.ObligationPending,
				DueDate:       &d,
			})
		}
		return out, nil

	case tnpl.PlanPercentage:
		// Placeholder only; real per-earning obligations are created
		// out-of-band as income materializes.
		return []tnpl.Obligation{{
			ObligationID:  id.NewID32(),
			LoanID:        l.ID,
			AthleteID:     l.AthleteID,
			Amount:        0,
			PaymentMethod: l.RepaymentMethod,
			Status:        tnpl.ObligationPercentage,
		}}, nil

	default:
		return nil, tnpl.ErrUnknownPlan
	}
}

// splitEvenly divides total into n parts rounded to whole currency
// units, pushing the rounding remainder onto the last part so the parts
// always sum to total. Kept alongside the faithful unrounded division
// above until product decides which behavior ships.
func splitEvenly(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	part := float64(int64(total) / int64(n))
	out := make([]float64, n)
	for i := range out {
		out[i] = part
	}
	out[n-1] = total - part*float64(n-1)
	return out
}
