package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	loanDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/loanapp"
)

type LoanHandler struct{ uc *loanapp.Usecase }

func NewLoanHandler(uc *loanapp.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanApplicationReq struct {
	CustomerID   uint64          `json:"customer_id" validate:"required"`
	LoanAmount   decimal.Decimal `json:"loan_amount" validate:"required,gt=0,dec2"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int             `json:"tenure" validate:"required,gt=0"`
}

func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	var req loanApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.CheckEligibility(c.Request().Context(), loanapp.EligibilityInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.CreateLoan(c.Request().Context(), loanapp.CreateLoanInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return notFoundOr500(c, err)
	}
	if !dto.LoanApproved {
		return c.JSON(http.StatusOK, dto)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ViewLoan(c echo.Context) error {
	id, err := parseID(c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.ViewLoan(c.Request().Context(), id)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ViewLoansByCustomer(c echo.Context) error {
	id, err := parseID(c.Param("customer_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	out, err := h.uc.ViewLoansByCustomer(c.Request().Context(), id)
	if err != nil {
		return notFoundOr500(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func notFoundOr500(c echo.Context, err error) error {
	if errors.Is(err, customerDomain.ErrNotFound) || errors.Is(err, loanDomain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
