package google

import (
	"fmt"
	"strings"

	"battista/internal/core"
)

// parseRows converts a values matrix (as returned by the Sheets API) into
// transactions. Column order follows the CSV ledger: date, amount,
// category, payment method, note.
func parseRows(values [][]interface{}) ([]core.Transaction, error) {
	transactions := make([]core.Transaction, 0, len(values))
	for i, row := range values {
		if isEmptyRow(row) {
			continue
		}
		tx, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func parseRow(row []interface{}) (core.Transaction, error) {
	date, err := core.ParseDate(cell(row, 0))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("date %q: %w", cell(row, 0), err)
	}
	cents, err := core.ParseAmountCents(cell(row, 1))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", cell(row, 1), err)
	}
	tx := core.Transaction{
		Amount:        core.Money{Cents: cents},
		Date:          date,
		Category:      cell(row, 2),
		PaymentMethod: cell(row, 3),
		Note:          cell(row, 4),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}

func isEmptyRow(row []interface{}) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}
