package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sponsorhub-backend/internal/domain/gateway"
)

// Client talks to the payment provider's REST API. It performs no
// retries; a failed call surfaces as *gateway.Error and the caller
// decides what to do.
type Client struct {
	baseURL string
	key     string
	hc      *http.Client
}

func NewClient(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

type orderReq struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type orderResp struct {
	OrderRef string `json:"order_ref"`
}

func (c *Client) CreateOrder(ctx context.Context, amount float64, currency string) (*gateway.Order, error) {
	var out orderResp
	err := c.post(ctx, "/v1/orders", orderReq{Amount: amount, Currency: currency}, &out)
	if err != nil {
		return nil, &gateway.Error{Op: "create_order", Cause: err}
	}
	return &gateway.Order{Ref: out.OrderRef, Amount: amount, Currency: currency}, nil
}

func (c *Client) Capture(ctx context.Context, orderRef string) error {
	if err := c.post(ctx, "/v1/orders/"+orderRef+"/capture", struct{}{}, nil); err != nil {
		return &gateway.Error{Op: "capture", Cause: err}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway returned %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
