package http

import (
	"errors"
	"net/http"

	"sponsorhub-backend/internal/domain/gateway"
	"sponsorhub-backend/internal/domain/payment"
	"sponsorhub-backend/internal/usecase/escrow"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *escrow.Usecase }

func NewPaymentHandler(uc *escrow.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type initializePaymentReq struct {
	RequestID string  `json:"request_id" validate:"required,hex32"`
	PayerID   string  `json:"payer_id"   validate:"required,hex32"`
	PayeeID   string  `json:"payee_id"   validate:"required,hex32"`
	Amount    float64 `json:"amount"     validate:"required,gt=0,dec2"`
	Currency  string  `json:"currency"`
}

type refundReq struct {
	Percentage float64 `json:"percentage" validate:"omitempty,gt=0,lte=100"`
}

func (h *PaymentHandler) Initialize(c echo.Context) error {
	var req initializePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Initialize(c.Request().Context(), escrow.InitializeInput{
		RequestID: req.RequestID,
		PayerID:   req.PayerID,
		PayeeID:   req.PayeeID,
		Amount:    req.Amount,
		Currency:  req.Currency,
	})
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) MoveToEscrow(c echo.Context) error {
	dto, err := h.uc.MoveToEscrow(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		var ge *gateway.Error
		if errors.As(err, &ge) && dto != nil {
			// capture failed; report the persisted failed transaction
			return c.JSON(http.StatusBadGateway, map[string]any{
				"error":       "payment capture failed",
				"transaction": dto,
			})
		}
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Release(c echo.Context) error {
	dto, err := h.uc.Release(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Refund(c echo.Context) error {
	var req refundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Refund(c.Request().Context(), c.Param("payment_id"), req.Percentage)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List returns transactions for ?payee_id= or ?payer_id=, with
// aggregate metrics in the envelope.
func (h *PaymentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		res *escrow.ListResult
		err error
	)
	switch {
	case c.QueryParam("payee_id") != "":
		res, err = h.uc.ListByPayee(ctx, c.QueryParam("payee_id"))
	case c.QueryParam("payer_id") != "":
		res, err = h.uc.ListByPayer(ctx, c.QueryParam("payer_id"))
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payee_id or payer_id query param required"})
	}
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func paymentError(c echo.Context, err error) error {
	var ge *gateway.Error
	switch {
	case errors.Is(err, payment.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "payment not found"})
	case errors.Is(err, payment.ErrInvalidTransition), errors.Is(err, payment.ErrTerminalState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &ge):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "payment gateway error"})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
