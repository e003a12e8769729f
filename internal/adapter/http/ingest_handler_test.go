package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/testutil/customermock"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/testutil/loanmock"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/ingest"
)

func multipartCSV(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestIngestCustomers_Upload(t *testing.T) {
	e := newEchoWithValidator()

	var upserted int
	repo := &customermock.Repo{
		UpsertFn: func(ctx context.Context, c *customerDomain.Customer) error {
			upserted++
			return nil
		},
	}
	h := NewIngestHandler(ingest.NewUsecase(repo, &loanmock.Repo{}))

	csv := "customer_id,first_name,last_name,phone_number,monthly_salary\n1,Asha,Verma,9999900001,50000\n"
	body, ct := multipartCSV(t, "file", "customers.csv", csv)

	req := httptest.NewRequest(stdhttp.MethodPost, "/ingest/customers", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IngestCustomers(c); err != nil {
		t.Fatalf("IngestCustomers error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var s ingest.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if s.Ingested != 1 || s.Skipped != 0 || upserted != 1 {
		t.Fatalf("summary: %+v upserted=%d", s, upserted)
	}
}

func TestIngestLoans_MissingFile(t *testing.T) {
	e := newEchoWithValidator()
	h := NewIngestHandler(ingest.NewUsecase(&customermock.Repo{}, &loanmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/ingest/loans", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.IngestLoans(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
