package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/testutil/customermock"
	customerUC "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/customer"
)

func TestRegister_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &customermock.Repo{
		CreateFn: func(ctx context.Context, c *customerDomain.Customer) error {
			c.CustomerID = 12
			return nil
		},
	}
	h := NewCustomerHandler(customerUC.NewUsecase(repo))

	c, rec := postJSON(e, "/register", map[string]any{
		"first_name":     "Asha",
		"last_name":      "Verma",
		"age":            31,
		"monthly_income": 50000,
		"phone_number":   "9999900001",
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got customerUC.CustomerDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.CustomerID != 12 || got.ApprovedLimit != 1_800_000 {
		t.Fatalf("dto: %+v", got)
	}
	if got.MonthlyIncome.StringFixed(2) != "50000.00" {
		t.Fatalf("income: %s", got.MonthlyIncome)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(customerUC.NewUsecase(&customermock.Repo{}))

	c, rec := postJSON(e, "/register", map[string]any{
		"first_name":     "Asha",
		"monthly_income": 50000,
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(resp.Details, "LastName", "is required") {
		t.Fatalf("details: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "PhoneNumber", "is required") {
		t.Fatalf("details: %+v", resp.Details)
	}
}

func TestRegister_FractionalPaiseRejected(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(customerUC.NewUsecase(&customermock.Repo{}))

	c, rec := postJSON(e, "/register", map[string]any{
		"first_name":     "Asha",
		"last_name":      "Verma",
		"monthly_income": 50000.123,
		"phone_number":   "9999900001",
	})
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !containsFieldMsg(resp.Details, "MonthlyIncome", "2 decimal places") {
		t.Fatalf("details: %+v", resp.Details)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(customerUC.NewUsecase(&customermock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/customer/404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customer_id")
	c.SetParamValues("404")

	if err := h.GetCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
