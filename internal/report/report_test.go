package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"battista/internal/core"
	"battista/internal/stats"
)

func testCollection(t *testing.T) *stats.Collection {
	t.Helper()
	today := core.NewDate(2024, 2, 15)
	transactions := []core.Transaction{
		{Amount: core.Money{Cents: 10000}, Date: core.NewDate(2024, 1, 10), Category: "Food", PaymentMethod: "card", Note: "groceries run"},
		{Amount: core.Money{Cents: 2500}, Date: core.NewDate(2024, 2, 10), Category: "Food", PaymentMethod: "card", Note: "lunch"},
		{Amount: core.Money{Cents: 45000}, Date: core.NewDate(2024, 2, 1), Category: "Rent", PaymentMethod: "transfer", Note: "february rent"},
	}
	c, err := stats.Aggregate(transactions, today, []int{7, 30, 365})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	return c
}

func testBudget() core.Budget {
	b := core.Budget{PerCategory: map[string]float64{"Food": 10, "Rent": 20}}
	b.Normalize()
	return b
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	today := core.NewDate(2024, 2, 15)
	err := Render(&sb, testCollection(t), testBudget(), today, Options{
		SourcePath: "ledger.xml",
		Version:    "1.0.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := sb.String()

	for _, want := range []string{
		"#import \"@preview/cetz:0.3.2\"",
		"Spending report from* `ledger.xml`",
		"February 15, 2024",
		"= Monthly Budget",
		"= 12 Month Overview",
		"chart.columnchart((",
		"== Last 7 days",
		"== Last 30 days",
		"== Last 365 days",
		"=== Biggest expenses (last 365 days)",
		"[Rent],",
		"[Food],",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, doc)
		}
	}

	// Short windows never get a biggest-expenses section.
	if strings.Contains(doc, "Biggest expenses (last 7 days)") {
		t.Fatalf("7-day window should not list biggest expenses")
	}
}

func TestRenderWithoutBudget(t *testing.T) {
	var sb strings.Builder
	today := core.NewDate(2024, 2, 15)
	err := Render(&sb, testCollection(t), core.Budget{}, today, Options{SourcePath: "l.xml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := sb.String()
	if strings.Contains(doc, "= Monthly Budget") || strings.Contains(doc, "12 Month Overview") {
		t.Fatalf("budget sections rendered without a budget:\n%s", doc)
	}
	if !strings.Contains(doc, "= Data") {
		t.Fatalf("data section missing")
	}
}

func TestBuildWindowTable(t *testing.T) {
	c := testCollection(t)
	budget := testBudget()

	// 30-day window: Rent 450 + Food 25 inside, overall budget 30*30=900
	// still above the 475 total, so category allowances show.
	table := buildWindowTable(30, c.Windows[30], budget)
	if table.Total != "475.00" {
		t.Fatalf("window total = %s", table.Total)
	}
	if len(table.Rows) != 2 || table.Rows[0].Category != "Rent" {
		t.Fatalf("rows should lead with the biggest category: %+v", table.Rows)
	}
	rent := table.Rows[0]
	// Allowance 20/day * 30 days = 600 against 450 spent: on track.
	if rent.Allowed.Text != "150.00" || rent.Allowed.Color != "green" {
		t.Fatalf("rent allowance cell = %+v", rent.Allowed)
	}
	if table.TotalAllowed.Color != "green" {
		t.Fatalf("total allowance cell = %+v", table.TotalAllowed)
	}

	// Without any budget the cells stay empty and black.
	plain := buildWindowTable(30, c.Windows[30], core.Budget{})
	if plain.Rows[0].Allowed.Text != "" || plain.Rows[0].Allowed.Color != "black" {
		t.Fatalf("allowance cell without budget = %+v", plain.Rows[0].Allowed)
	}
	if plain.TotalAllowed.Text != "" {
		t.Fatalf("total cell without budget = %+v", plain.TotalAllowed)
	}
}

func TestBuildWindowTableOverBudgetSuppressesCategories(t *testing.T) {
	c := testCollection(t)
	// Tiny overall allowance: 1/day * 30 days is far below the 475 total.
	budget := core.Budget{PerCategory: map[string]float64{"Rent": 0.5, "Food": 0.5}, Total: 1}

	table := buildWindowTable(30, c.Windows[30], budget)
	for _, row := range table.Rows {
		if row.Allowed.Text != "" {
			t.Fatalf("category allowance should be suppressed when over the overall budget: %+v", row)
		}
	}
	if table.TotalAllowed.Color != "red" {
		t.Fatalf("total cell should be red: %+v", table.TotalAllowed)
	}
}

func TestBuildOverviewProratesCurrentMonth(t *testing.T) {
	c := testCollection(t)
	budget := testBudget()
	today := core.NewDate(2024, 2, 15)

	o := buildOverview(c, budget, today)
	if o == nil {
		t.Fatalf("expected an overview")
	}
	if len(o.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %+v", o.Bars)
	}
	// January: 100.00 spent, allowance 31*30=930, no overflow.
	if o.Bars[0].Label != "01/24" || o.Bars[0].Amount != "100.00" || o.Bars[0].Over != "" {
		t.Fatalf("january bar = %+v", o.Bars[0])
	}
	// February so far: allowance 15 days * 30 = 450 against 475 spent.
	if o.Bars[1].Label != "02/24" || o.Bars[1].Amount != "450.00" || o.Bars[1].Over != "25.00" {
		t.Fatalf("february bar = %+v", o.Bars[1])
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.typ")
	today := core.NewDate(2024, 2, 15)
	err := WriteFile(path, testCollection(t), testBudget(), today, Options{SourcePath: "ledger.xml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(raw), "= Data") {
		t.Fatalf("report content wrong")
	}
}
