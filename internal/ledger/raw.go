// Package ledger reads and writes battista ledger files.
//
// A ledger is a rootless stream of XML elements: <budget/> entries holding
// spending allowances and <transaction/> entries holding dated amounts.
// A CSV ingestion path accepts the same records in tabular form.
package ledger

import (
	"fmt"

	"battista/internal/core"
)

type (
	// RawBudget is a budget element with its attribute strings preserved
	// verbatim, so a rewrite never reformats what the user typed.
	// An empty Category means the overall budget.
	RawBudget struct {
		Category string
		Amount   string
		Duration string
	}

	// RawTransaction is a transaction element with attributes preserved
	// verbatim.
	RawTransaction struct {
		Amount        string
		Category      string
		Date          string
		PaymentMethod string
		Note          string
	}

	// File is the raw contents of a ledger file.
	File struct {
		Budgets      []RawBudget
		Transactions []RawTransaction
	}
)

func (t RawTransaction) String() string {
	return fmt.Sprintf("[TRANSACTION; %s; %s; %s; %s; `%s`]",
		t.Date, t.Category, t.Amount, t.PaymentMethod, t.Note)
}

// Resolve converts the raw records into validated domain values. Budget
// allowances are normalized to per-day rates (amount divided by duration).
func (f *File) Resolve() ([]core.Transaction, core.Budget, error) {
	budget := core.Budget{PerCategory: make(map[string]float64)}
	for _, b := range f.Budgets {
		rate, err := b.perDayRate()
		if err != nil {
			return nil, core.Budget{}, err
		}
		if b.Category == "" {
			budget.Total = rate
			continue
		}
		if _, dup := budget.PerCategory[b.Category]; dup {
			return nil, core.Budget{}, fmt.Errorf("duplicate budget for category %q", b.Category)
		}
		budget.PerCategory[b.Category] = rate
	}
	budget.Normalize()

	transactions := make([]core.Transaction, 0, len(f.Transactions))
	for i, rt := range f.Transactions {
		tx, err := rt.resolve()
		if err != nil {
			return nil, core.Budget{}, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, budget, nil
}

func (b RawBudget) perDayRate() (float64, error) {
	amount, err := parseFloat(b.Amount)
	if err != nil {
		return 0, fmt.Errorf("budget %q: bad amount %q", b.Category, b.Amount)
	}
	duration, err := parseFloat(b.Duration)
	if err != nil || duration == 0 {
		return 0, fmt.Errorf("budget %q: bad duration %q", b.Category, b.Duration)
	}
	return amount / duration, nil
}

func (t RawTransaction) resolve() (core.Transaction, error) {
	cents, err := core.ParseAmountCents(t.Amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", t.Amount, err)
	}
	date, err := core.ParseDate(t.Date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("date %q: %w", t.Date, err)
	}
	tx := core.Transaction{
		Amount:        core.Money{Cents: cents},
		Date:          date,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Note:          t.Note,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}
