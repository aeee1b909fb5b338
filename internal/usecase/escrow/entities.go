package escrow

import (
	"time"
)

type InitializeInput struct {
	RequestID string  `json:"request_id"`
	PayerID   string  `json:"payer_id"`
	PayeeID   string  `json:"payee_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

type TransactionDTO struct {
	PaymentID     string     `json:"payment_id"`
	RequestID     string     `json:"request_id"`
	PayerID       string     `json:"payer_id"`
	PayeeID       string     `json:"payee_id"`
	Amount        float64    `json:"amount"`
	PlatformFee   float64    `json:"platform_fee"`
	AthletePayout float64    `json:"athlete_payout"`
	Status        string     `json:"status"`
	OrderRef      string     `json:"order_ref,omitempty"`
	ReleasedAt    *time.Time `json:"released_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// RefundDTO carries the computed refund amount back to the caller; the
// stored transaction amount is left untouched.
type RefundDTO struct {
	TransactionDTO
	RefundPercent float64 `json:"refund_percent"`
	RefundAmount  float64 `json:"refund_amount"`
}

// Metrics is a pure aggregate over a transaction list.
type Metrics struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	TotalFees      float64 `json:"total_fees"`
	InEscrowAmount float64 `json:"in_escrow_amount"`
	MeanAmount     float64 `json:"mean_amount"`
}
