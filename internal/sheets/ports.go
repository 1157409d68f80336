package sheets

import (
	"context"

	"battista/internal/core"
)

// Source fetches ledger transactions from a remote spreadsheet.
type Source interface {
	FetchTransactions(ctx context.Context) ([]core.Transaction, error)
}
