package http

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 10, 10.5, 10.55, -3.25} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected %v valid, got err: %v", v, err)
		}
	}
	for _, v := range []float64{10.555, 0.001, -3.141} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected error for %v", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", "2 decimal places") {
			t.Fatalf("wrong message for %v: %+v", v, ToFieldErrors(err))
		}
	}
}

func TestDecimalFieldsValidateAsNumbers(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `validate:"required,gt=0,dec2"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Amount: decimal.RequireFromString("120.50")}); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}

	// zero fails required, negatives fail gt, sub-paise fails dec2
	cases := map[string]string{
		"0":      "is required",
		"-12":    "greater than",
		"99.999": "2 decimal places",
	}
	for in, wantMsg := range cases {
		err := cv.Validate(P{Amount: decimal.RequireFromString(in)})
		if err == nil {
			t.Fatalf("expected error for %s", in)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", wantMsg) {
			t.Fatalf("for %s want %q in %+v", in, wantMsg, ToFieldErrors(err))
		}
	}
}

func TestToFieldErrors_NonValidationError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("got %+v", fe)
	}
}
