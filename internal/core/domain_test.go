package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		y  int
		m  int
		d  int
		ok bool
	}{
		{"15/02/2024", 2024, 2, 15, true},
		{" 01/01/2020 ", 2020, 1, 1, true},
		{"2024-02-15", 0, 0, 0, false},
		{"31/02/2024", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q unexpected error: %v", tc.in, err)
			}
			if got.Year() != tc.y || got.Month() != tc.m || got.Day() != tc.d {
				t.Fatalf("%q parsed as %v", tc.in, got)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestDateDaysUntil(t *testing.T) {
	a := NewDate(2024, 1, 10)
	b := NewDate(2024, 2, 1)
	if got := a.DaysUntil(b); got != 22 {
		t.Fatalf("expected 22 days, got %d", got)
	}
	if got := b.DaysUntil(a); got != -22 {
		t.Fatalf("expected -22 days, got %d", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestDateMinMax(t *testing.T) {
	a := NewDate(2024, 1, 10)
	b := NewDate(2024, 2, 1)
	if got := a.Min(b); !got.Equal(a.Time) {
		t.Fatalf("Min: expected %v, got %v", a, got)
	}
	if got := a.Max(b); !got.Equal(b.Time) {
		t.Fatalf("Max: expected %v, got %v", b, got)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Amount:        Money{Cents: 1250},
		Date:          NewDate(2024, 3, 1),
		Category:      "Food",
		PaymentMethod: "card",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	refund := good
	refund.Amount = Money{Cents: -300}
	if err := refund.Validate(); err != nil {
		t.Fatalf("negative amounts are refunds, got %v", err)
	}

	bads := []Transaction{
		{Amount: Money{Cents: 1}, Date: Date{Time: time.Time{}}, Category: "c", PaymentMethod: "p"},
		{Amount: Money{Cents: 0}, Date: NewDate(2024, 3, 1), Category: "c", PaymentMethod: "p"},
		{Amount: Money{Cents: 1}, Date: NewDate(2024, 3, 1), Category: "", PaymentMethod: "p"},
		{Amount: Money{Cents: 1}, Date: NewDate(2024, 3, 1), Category: "c", PaymentMethod: " "},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetNormalize(t *testing.T) {
	b := Budget{PerCategory: map[string]float64{"Food": 10, "Rent": 20}}
	b.Normalize()
	if b.Total != 30 {
		t.Fatalf("expected total 30, got %v", b.Total)
	}

	explicit := Budget{PerCategory: map[string]float64{"Food": 10}, Total: 50}
	explicit.Normalize()
	if explicit.Total != 50 {
		t.Fatalf("explicit total must survive, got %v", explicit.Total)
	}

	var empty Budget
	empty.Normalize()
	if empty.Configured() {
		t.Fatalf("empty budget must not report as configured")
	}
}
