// Package ingest loads historical customer and loan data from CSV exports
// into the backing collections. The decision engine never sees raw rows; it
// only ever consumes records materialized here.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	customerDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/customer"
	loanDomain "github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/domain/loan"
	"github.com/SupriyoGhoshal/Credit-Approver-Backend-System/internal/usecase/credit"
)

var thirtySix = decimal.NewFromInt(36)

type Usecase struct {
	customers customerDomain.Repository
	loans     loanDomain.Repository
}

func NewUsecase(customers customerDomain.Repository, loans loanDomain.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

// Summary reports per-row outcomes of one ingestion run. Rows are skipped,
// never fatal: a malformed row or a loan referencing an unknown customer does
// not abort the rest of the file.
type Summary struct {
	Ingested int `json:"ingested"`
	Skipped  int `json:"skipped"`
}

// IngestCustomers upserts customer rows keyed by customer_id. The approved
// credit limit is recomputed from the monthly salary on every run, same as at
// registration.
//
// Expected header: customer_id, first_name, last_name, age, phone_number,
// monthly_salary, current_debt (age and current_debt optional).
func (u *Usecase) IngestCustomers(ctx context.Context, r io.Reader) (*Summary, error) {
	rows, cols, err := readTable(r)
	if err != nil {
		return nil, err
	}
	var s Summary
	for _, row := range rows {
		id, err1 := strconv.ParseUint(row.get(cols, "customer_id"), 10, 64)
		income, err2 := decimal.NewFromString(row.get(cols, "monthly_salary"))
		if err1 != nil || err2 != nil || id == 0 {
			s.Skipped++
			continue
		}
		c := &customerDomain.Customer{
			CustomerID:    id,
			FirstName:     row.get(cols, "first_name"),
			LastName:      row.get(cols, "last_name"),
			Age:           parseOptionalInt(row.get(cols, "age")),
			PhoneNumber:   row.get(cols, "phone_number"),
			MonthlyIncome: income,
			ApprovedLimit: credit.RoundToNearestLakh(income.Mul(thirtySix)),
		}
		if debt, err := decimal.NewFromString(row.get(cols, "current_debt")); err == nil {
			c.CurrentDebt = debt
		}
		if err := u.customers.Upsert(ctx, c); err != nil {
			return &s, fmt.Errorf("upsert customer %d: %w", id, err)
		}
		s.Ingested++
	}
	return &s, nil
}

// IngestLoans upserts loan rows keyed by loan_id. The monthly installment is
// recomputed from principal, rate and tenure rather than trusted from the
// file, and every ingested loan is marked approved. Rows referencing a
// customer that does not exist are skipped.
//
// Expected header: loan_id, customer_id, loan_amount, interest_rate, tenure,
// emis_paid_on_time, start_date, end_date (dates optional, YYYY-MM-DD).
func (u *Usecase) IngestLoans(ctx context.Context, r io.Reader) (*Summary, error) {
	rows, cols, err := readTable(r)
	if err != nil {
		return nil, err
	}
	var s Summary
	for _, row := range rows {
		loanID, err1 := strconv.ParseUint(row.get(cols, "loan_id"), 10, 64)
		custID, err2 := strconv.ParseUint(row.get(cols, "customer_id"), 10, 64)
		amount, err3 := decimal.NewFromString(row.get(cols, "loan_amount"))
		rate, err4 := decimal.NewFromString(row.get(cols, "interest_rate"))
		tenure, err5 := strconv.Atoi(row.get(cols, "tenure"))
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			s.Skipped++
			continue
		}
		if _, err := u.customers.GetByCustomerID(ctx, custID); err != nil {
			s.Skipped++
			continue
		}
		ontime, _ := strconv.Atoi(row.get(cols, "emis_paid_on_time"))
		l := &loanDomain.Loan{
			LoanID:             loanID,
			CustomerID:         custID,
			LoanAmount:         amount,
			Tenure:             tenure,
			InterestRate:       rate,
			MonthlyInstallment: credit.ComputeEMI(amount, rate, tenure),
			EMIsPaidOnTime:     ontime,
			Approved:           true,
			StartDate:          parseOptionalDate(row.get(cols, "start_date")),
			EndDate:            parseOptionalDate(row.get(cols, "end_date")),
		}
		if err := u.loans.Upsert(ctx, l); err != nil {
			return &s, fmt.Errorf("upsert loan %d: %w", loanID, err)
		}
		s.Ingested++
	}
	return &s, nil
}

type record []string

func (r record) get(cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// readTable reads a CSV with a header row and returns the data rows plus a
// normalized column index (lower snake_case names).
func readTable(r io.Reader) ([]record, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		cols[strings.ReplaceAll(h, " ", "_")] = i
	}

	var rows []record
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record(rec))
	}
	return rows, cols, nil
}

func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
