package http

import (
	"errors"
	"net/http"

	"sponsorhub-backend/internal/domain/tnpl"
	tnplUC "sponsorhub-backend/internal/usecase/tnpl"

	"github.com/labstack/echo/v4"
)

type TNPLHandler struct{ uc *tnplUC.Usecase }

func NewTNPLHandler(uc *tnplUC.Usecase) *TNPLHandler { return &TNPLHandler{uc: uc} }

type applyLoanReq struct {
	AthleteID           string  `json:"athlete_id"           validate:"required,hex32"`
	Amount              float64 `json:"amount"               validate:"required,gt=0,dec2"`
	Purpose             string  `json:"purpose"              validate:"required"`
	TrainingDuration    string  `json:"training_duration"`
	TrainingInstitution string  `json:"training_institution"`
	RepaymentPlan       string  `json:"repayment_plan"       validate:"required,plan"`
	RepaymentMethod     string  `json:"repayment_method"     validate:"required"`
}

type reviewLoanReq struct {
	Approve bool `json:"approve"`
}

type contributeReq struct {
	FunderID      string  `json:"funder_id"      validate:"required,hex32"`
	Amount        float64 `json:"amount"         validate:"required,gt=0,dec2"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	PaymentRef    string  `json:"payment_ref"`
}

type completeRepaymentReq struct {
	PaymentRef string `json:"payment_ref" validate:"required"`
}

func (h *TNPLHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), tnplUC.ApplyInput{
		AthleteID:           req.AthleteID,
		Amount:              req.Amount,
		Purpose:             req.Purpose,
		TrainingDuration:    req.TrainingDuration,
		TrainingInstitution: req.TrainingInstitution,
		RepaymentPlan:       req.RepaymentPlan,
		RepaymentMethod:     req.RepaymentMethod,
	})
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TNPLHandler) Review(c echo.Context) error {
	var req reviewLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Review(c.Request().Context(), c.Param("loan_id"), req.Approve)
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TNPLHandler) Contribute(c echo.Context) error {
	var req contributeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.uc.Contribute(c.Request().Context(), tnplUC.ContributeInput{
		LoanID:        c.Param("loan_id"),
		FunderID:      req.FunderID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentRef:    req.PaymentRef,
	})
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *TNPLHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TNPLHandler) ListLoans(c echo.Context) error {
	athleteID := c.QueryParam("athlete_id")
	if athleteID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "athlete_id query param required"})
	}
	dtos, err := h.uc.LoansByAthlete(c.Request().Context(), athleteID)
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TNPLHandler) Schedule(c echo.Context) error {
	dtos, err := h.uc.Schedule(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TNPLHandler) Contributions(c echo.Context) error {
	dtos, err := h.uc.Contributions(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TNPLHandler) CompleteRepayment(c echo.Context) error {
	var req completeRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CompleteRepayment(c.Request().Context(), c.Param("obligation_id"), req.PaymentRef)
	if err != nil {
		return tnplError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func tnplError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, tnpl.ErrLoanNotFound), errors.Is(err, tnpl.ErrObligationNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, tnpl.ErrNotApproved),
		errors.Is(err, tnpl.ErrInvalidTransition),
		errors.Is(err, tnpl.ErrAlreadyCompleted),
		errors.Is(err, tnpl.ErrOverfunded):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, tnpl.ErrUnknownPlan):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
