package gateway

import (
	"context"
	"fmt"
)

// Error wraps any failure reported by the payment gateway (reject,
// timeout, user-cancelled checkout). Callers match with errors.As.
type Error struct {
	Op    string
	Cause error
}

func (e *Error) Error() string { return fmt.Sprintf("gateway %s: %v", e.Op, e.Cause) }
func (e *Error) Unwrap() error { return e.Cause }

// Order is the gateway-side handle for a created payment order.
type Order struct {
	Ref      string
	Amount   float64
	Currency string
}

// Gateway is the capability contract for the external payment provider.
// No retry is performed at this layer; failures surface as *Error.
type Gateway interface {
	// CreateOrder registers the intent to collect amount (in the given
	// currency) and returns the provider's order handle.
	CreateOrder(ctx context.Context, amount float64, currency string) (*Order, error)
	// Capture moves a previously created order's funds into the escrow
	// account.
	Capture(ctx context.Context, orderRef string) error
}
