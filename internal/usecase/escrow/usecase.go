package escrow

import (
	"context"
	"errors"
	"sync"
	"time"

	"sponsorhub-backend/internal/domain/gateway"
	"sponsorhub-backend/internal/domain/payment"
	"sponsorhub-backend/internal/domain/uow"
	"sponsorhub-backend/pkg/id"

	"gorm.io/gorm"
)

const defaultCurrency = "INR"

type Usecase struct {
	repo payment.Repository
	gw   gateway.Gateway
	uow  uow.UnitOfWork
	now  func() time.Time

	// timers armed by MoveToEscrow, disarmed by manual release/refund
	autoDelay time.Duration
	armMu     sync.Mutex
	armed     map[string]*AutoRelease
}

func NewUsecase(repo payment.Repository, gw gateway.Gateway, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, gw: gw, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// Initialize creates a pending transaction with the fee split applied.
// The gateway order is created first; if that fails nothing is
// persisted and the gateway error surfaces unmodified.
func (u *Usecase) Initialize(ctx context.Context, in InitializeInput) (*TransactionDTO, error) {
	if in.PayerID == "" || in.PayeeID == "" || in.RequestID == "" {
		return nil, errors.New("invalid input")
	}
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	currency := in.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	order, err := u.gw.CreateOrder(ctx, in.Amount, currency)
	if err != nil {
		return nil, err
	}

	fee, payout := FeeSplit(in.Amount)
	t := &payment.Transaction{
		PaymentID:     id.NewID32(),
		RequestID:     in.RequestID,
		PayerID:       in.PayerID,
		PayeeID:       in.PayeeID,
		Amount:        in.Amount,
		PlatformFee:   fee,
		AthletePayout: payout,
		Status:        payment.StatusPending,
		OrderRef:      order.Ref,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toDTO(t), nil
}

// MoveToEscrow captures the gateway order and moves pending -> in_escrow.
// A capture failure persists the failed copy and returns it alongside
// the gateway error so the caller sees both.
func (u *Usecase) MoveToEscrow(ctx context.Context, paymentID string) (*TransactionDTO, error) {
	var dto *TransactionDTO
	var gwErr error
	err := u.uow.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, t *payment.Transaction) error {
		next, err := applyEscrow(*t)
		if err != nil {
			return err
		}
		if cerr := u.gw.Capture(ctx, t.OrderRef); cerr != nil {
			failed, ferr := applyFailure(*t)
			if ferr != nil {
				return ferr
			}
			// commit the failed status, carry the gateway error out
			*t = failed
			if serr := r.Payments.Save(ctx, t); serr != nil {
				return serr
			}
			dto = toDTO(t)
			gwErr = cerr
			return nil
		}
		*t = next
		if err := r.Payments.Save(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	if gwErr != nil {
		// failed copy was persisted; report both
		return dto, gwErr
	}
	u.armAutoRelease(paymentID)
	return dto, nil
}

// Release moves in_escrow -> released and stamps released_at. The payee
// notification is the HTTP layer's concern, not ours.
func (u *Usecase) Release(ctx context.Context, paymentID string) (*TransactionDTO, error) {
	var dto *TransactionDTO
	err := u.uow.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, t *payment.Transaction) error {
		next, err := applyRelease(*t, u.now())
		if err != nil {
			return err
		}
		*t = next
		if err := r.Payments.Save(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	u.disarmAutoRelease(paymentID)
	return dto, nil
}

// Refund moves in_escrow -> refunded. percent defaults to a full refund;
// the computed refund amount is reported to the caller while the stored
// gross amount stays unchanged.
func (u *Usecase) Refund(ctx context.Context, paymentID string, percent float64) (*RefundDTO, error) {
	if percent <= 0 {
		percent = 100
	}
	if percent > 100 {
		return nil, errors.New("refund percentage exceeds 100")
	}
	var dto *RefundDTO
	err := u.uow.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, t *payment.Transaction) error {
		next, err := applyRefund(*t, u.now())
		if err != nil {
			return err
		}
		*t = next
		if err := r.Payments.Save(ctx, t); err != nil {
			return err
		}
		dto = &RefundDTO{
			TransactionDTO: *toDTO(t),
			RefundPercent:  percent,
			RefundAmount:   t.Amount * percent / 100,
		}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	u.disarmAutoRelease(paymentID)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, paymentID string) (*TransactionDTO, error) {
	t, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toDTO(t), nil
}

// ListResult pairs a transaction list with its aggregate metrics.
type ListResult struct {
	Transactions []TransactionDTO `json:"transactions"`
	Metrics      Metrics          `json:"metrics"`
}

func (u *Usecase) ListByPayee(ctx context.Context, payeeID string) (*ListResult, error) {
	ts, err := u.repo.ListByPayee(ctx, payeeID)
	if err != nil {
		return nil, err
	}
	return &ListResult{Transactions: toDTOs(ts), Metrics: ComputeMetrics(ts)}, nil
}

func (u *Usecase) ListByPayer(ctx context.Context, payerID string) (*ListResult, error) {
	ts, err := u.repo.ListByPayer(ctx, payerID)
	if err != nil {
		return nil, err
	}
	return &ListResult{Transactions: toDTOs(ts), Metrics: ComputeMetrics(ts)}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payment.ErrNotFound
	}
	return err
}

func toDTO(t *payment.Transaction) *TransactionDTO {
	return &TransactionDTO{
		PaymentID:     t.PaymentID,
		RequestID:     t.RequestID,
		PayerID:       t.PayerID,
		PayeeID:       t.PayeeID,
		Amount:        t.Amount,
		PlatformFee:   t.PlatformFee,
		AthletePayout: t.AthletePayout,
		Status:        string(t.Status),
		OrderRef:      t.OrderRef,
		ReleasedAt:    t.ReleasedAt,
		CreatedAt:     t.CreatedAt,
	}
}

func toDTOs(ts []payment.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i]))
	}
	return out
}
