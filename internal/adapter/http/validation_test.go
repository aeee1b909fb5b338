package http

import (
	"errors"
	"strings"
	"testing"
)

type validationProbe struct {
	ID     string  `validate:"required,hex32"`
	Amount float64 `validate:"required,gt=0,dec2"`
	Plan   string  `validate:"required,plan"`
}

func validProbe() validationProbe {
	return validationProbe{
		ID:     strings.Repeat("a", 32),
		Amount: 50000.25,
		Plan:   "installments",
	}
}

func TestValidator_AcceptsValidProbe(t *testing.T) {
	cv := NewValidator()
	if err := cv.Validate(validProbe()); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidator_Hex32(t *testing.T) {
	cv := NewValidator()

	bad := []string{
		"",
		strings.Repeat("a", 31),                // too short
		strings.Repeat("a", 33),                // too long
		strings.ToUpper(strings.Repeat("a", 32)), // uppercase
		strings.Repeat("z", 32),                // non-hex
	}
	for _, id := range bad {
		p := validProbe()
		p.ID = id
		err := cv.Validate(p)
		if err == nil {
			t.Fatalf("hex32 should reject %q", id)
		}
		fes := ToFieldErrors(err)
		if id != "" && !containsFieldMsg(fes, "ID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got %+v", id, fes)
		}
	}
}

func TestValidator_Dec2(t *testing.T) {
	cv := NewValidator()

	ok := []float64{1, 0.5, 100.25, 99999.99}
	for _, a := range ok {
		p := validProbe()
		p.Amount = a
		if err := cv.Validate(p); err != nil {
			t.Fatalf("dec2 should accept %v: %v", a, err)
		}
	}

	p := validProbe()
	p.Amount = 10.123
	err := cv.Validate(p)
	if err == nil {
		t.Fatalf("dec2 should reject 10.123")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "2 decimal places") {
		t.Fatalf("expected dec2 message, got %+v", ToFieldErrors(err))
	}
}

func TestValidator_Plan(t *testing.T) {
	cv := NewValidator()

	for _, plan := range []string{"lump_sum", "installments", "percentage_of_earnings"} {
		p := validProbe()
		p.Plan = plan
		if err := cv.Validate(p); err != nil {
			t.Fatalf("plan should accept %q: %v", plan, err)
		}
	}

	p := validProbe()
	p.Plan = "monthly"
	err := cv.Validate(p)
	if err == nil {
		t.Fatalf("plan should reject %q", p.Plan)
	}
	if !containsFieldMsg(ToFieldErrors(err), "Plan", "must be one of") {
		t.Fatalf("expected plan message, got %+v", ToFieldErrors(err))
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fes := ToFieldErrors(errors.New("boom"))
	if len(fes) != 1 || fes[0].Field != "_" || fes[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fes)
	}
}
