package google

import "testing"

func TestParseRows(t *testing.T) {
	values := [][]interface{}{
		{"10/01/2024", "12.50", "Food", "card", "groceries"},
		{"", "", "", ""}, // empty rows are skipped
		{"01/02/2024", "450", "Rent", "transfer"},
	}
	transactions, err := parseRows(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].Amount.Cents != 1250 || transactions[0].Note != "groceries" {
		t.Fatalf("first = %+v", transactions[0])
	}
	if transactions[1].Note != "" || transactions[1].Category != "Rent" {
		t.Fatalf("second = %+v", transactions[1])
	}
}

func TestParseRowsBadData(t *testing.T) {
	cases := [][][]interface{}{
		{{"2024-01-10", "1", "Food", "card"}},   // wrong date layout
		{{"10/01/2024", "1.005", "Food", "card"}}, // too many decimals
		{{"10/01/2024", "1", "", "card"}},       // missing category
	}
	for i, values := range cases {
		if _, err := parseRows(values); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
