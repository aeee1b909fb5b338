package escrow

import (
	"math"
	"time"

	"sponsorhub-backend/internal/domain/payment"
)

// Pure state transitions. Each takes the transaction by value and
// returns an updated copy; the caller's original is never mutated.
// Illegal transitions are rejected, never silently ignored.

// FeeSplit computes the platform cut and the athlete's payout for a
// gross amount. platformFee + athletePayout == amount always holds:
// the payout is derived by subtraction, not rounded independently.
func FeeSplit(amount float64) (platformFee, athletePayout float64) {
	platformFee = math.Round(amount * payment.PlatformFeeRate)
	return platformFee, amount - platformFee
}

func applyEscrow(t payment.Transaction) (payment.Transaction, error) {
	if t.Status.Terminal() {
		return t, payment.ErrTerminalState
	}
	if t.Status != payment.StatusPending {
		return t, payment.ErrInvalidTransition
	}
	t.Status = payment.StatusInEscrow
	return t, nil
}

func applyRelease(t payment.Transaction, now time.Time) (payment.Transaction, error) {
	if t.Status.Terminal() {
		return t, payment.ErrTerminalState
	}
	if t.Status != payment.StatusInEscrow {
		return t, payment.ErrInvalidTransition
	}
	t.Status = payment.StatusReleased
	t.ReleasedAt = &now
	return t, nil
}

func applyRefund(t payment.Transaction, now time.Time) (payment.Transaction, error) {
	if t.Status.Terminal() {
		return t, payment.ErrTerminalState
	}
	if t.Status != payment.StatusInEscrow {
		return t, payment.ErrInvalidTransition
	}
	t.Status = payment.StatusRefunded
	t.ReleasedAt = &now
	return t, nil
}

// applyFailure marks a capture or release attempt as failed. Allowed
// from pending and in_escrow; terminal states stay put.
func applyFailure(t payment.Transaction) (payment.Transaction, error) {
	if t.Status.Terminal() {
		return t, payment.ErrTerminalState
	}
	t.Status = payment.StatusFailed
	return t, nil
}
