package ledger

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"battista/internal/core"
)

// WriteTo serializes the ledger as XML: budgets first (the overall budget
// before category budgets, then by amount descending), transactions sorted
// newest first. Attribute strings are written back verbatim, escaped.
func (f *File) WriteTo(w io.Writer) error {
	budgets := append([]RawBudget(nil), f.Budgets...)
	sort.SliceStable(budgets, func(i, j int) bool {
		if (budgets[i].Category == "") != (budgets[j].Category == "") {
			return budgets[i].Category == ""
		}
		return budgetAmount(budgets[i]) > budgetAmount(budgets[j])
	})

	transactions := append([]RawTransaction(nil), f.Transactions...)
	sort.SliceStable(transactions, func(i, j int) bool {
		return txDate(transactions[i]).After(txDate(transactions[j]).Time)
	})

	for _, b := range budgets {
		var err error
		if b.Category == "" {
			_, err = fmt.Fprintf(w, "<budget amount=\"%s\" duration=\"%s\"/>\n",
				escapeAttr(b.Amount), escapeAttr(b.Duration))
		} else {
			_, err = fmt.Fprintf(w, "<budget category=\"%s\" amount=\"%s\" duration=\"%s\"/>\n",
				escapeAttr(b.Category), escapeAttr(b.Amount), escapeAttr(b.Duration))
		}
		if err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
	}
	for _, t := range transactions {
		var err error
		if t.Note == "" {
			_, err = fmt.Fprintf(w, "<transaction amount=\"%s\" category=\"%s\" date=\"%s\" payment-method=\"%s\"/>\n",
				escapeAttr(t.Amount), escapeAttr(t.Category), escapeAttr(t.Date), escapeAttr(t.PaymentMethod))
		} else {
			_, err = fmt.Fprintf(w, "<transaction amount=\"%s\" category=\"%s\" date=\"%s\" payment-method=\"%s\" note=\"%s\"/>\n",
				escapeAttr(t.Amount), escapeAttr(t.Category), escapeAttr(t.Date), escapeAttr(t.PaymentMethod), escapeAttr(t.Note))
		}
		if err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
	}
	return nil
}

// WriteFile rewrites the ledger at path, keeping a .bak copy of the previous
// contents.
func WriteFile(path string, f *File) error {
	if prev, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".bak", prev, 0644); err != nil {
			return fmt.Errorf("backup ledger: %w", err)
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := f.WriteTo(fh); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

func budgetAmount(b RawBudget) float64 {
	v, err := parseFloat(b.Amount)
	if err != nil {
		return 0
	}
	return v
}

// txDate parses a raw record's date for sorting; unparseable dates sink to
// the bottom of the file.
func txDate(t RawTransaction) core.Date {
	d, err := core.ParseDate(t.Date)
	if err != nil {
		return core.NewDate(1900, 1, 1)
	}
	return d
}

func escapeAttr(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
