package core

import "testing"

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"3.5", 350, true}, // single digit means tenths
		{" 2.50 ", 250, true},
		{"-1", -100, true},
		{"-12.34", -1234, true},
		{"+4.20", 420, true},
		{"0", 0, true},
		{"1.005", 0, false}, // third fractional digit
		{"1.2.3", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"", 0, false},
		{".", 0, false}, // separator with no digits
		{",", 0, false},
		{"-.", 0, false},
		{".5", 50, true},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyEuros(t *testing.T) {
	if got := (Money{Cents: 1234}).Euros(); got != 12.34 {
		t.Fatalf("expected 12.34, got %v", got)
	}
	if got := (Money{Cents: -50}).Euros(); got != -0.5 {
		t.Fatalf("expected -0.5, got %v", got)
	}
}
