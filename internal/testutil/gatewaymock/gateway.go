package gatewaymock

import (
	"context"

	"sponsorhub-backend/internal/domain/gateway"
)

var _ gateway.Gateway = (*Gateway)(nil)

// Gateway is a function-backed mock for the payment provider. Unwired
// CreateOrder returns a fixed order ref; unwired Capture succeeds.
type Gateway struct {
	CreateOrderFn func(ctx context.Context, amount float64, currency string) (*gateway.Order, error)
	CaptureFn     func(ctx context.Context, orderRef string) error
}

func (m *Gateway) CreateOrder(ctx context.Context, amount float64, currency string) (*gateway.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, amount, currency)
	}
	return &gateway.Order{Ref: "order_test", Amount: amount, Currency: currency}, nil
}

func (m *Gateway) Capture(ctx context.Context, orderRef string) error {
	if m.CaptureFn != nil {
		return m.CaptureFn(ctx, orderRef)
	}
	return nil
}
