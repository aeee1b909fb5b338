package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid payment state transition")
	ErrTerminalState     = errors.New("payment is in a terminal state")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusInEscrow Status = "in_escrow"
	StatusReleased Status = "released"
	StatusRefunded Status = "refunded"
	StatusFailed   Status = "failed"
)

// Terminal reports whether no further transition may change the status.
func (s Status) Terminal() bool {
	return s == StatusReleased || s == StatusRefunded || s == StatusFailed
}

// PlatformFeeRate is the marketplace cut retained on every transaction.
const PlatformFeeRate = 0.10

// Transaction is an append-only funds-transfer record. Rows are never
// deleted; status only moves through the transitions in usecase/escrow.
type Transaction struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	PaymentID     string     `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	RequestID     string     `gorm:"size:32;index:idx_payments_request" json:"request_id"`
	PayerID       string     `gorm:"size:32;index:idx_payments_payer" json:"payer_id"`
	PayeeID       string     `gorm:"size:32;index:idx_payments_payee" json:"payee_id"`
	Amount        float64    `gorm:"type:decimal(18,2)" json:"amount"`
	PlatformFee   float64    `gorm:"type:decimal(18,2)" json:"platform_fee"`
	AthletePayout float64    `gorm:"type:decimal(18,2)" json:"athlete_payout"`
	Status        Status     `gorm:"type:enum('pending','in_escrow','released','refunded','failed');default:'pending'" json:"status"`
	OrderRef      string     `gorm:"size:64" json:"order_ref"`
	ReleasedAt    *time.Time `gorm:"column:released_at" json:"released_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Transaction) TableName() string { return "payment_transactions" }
