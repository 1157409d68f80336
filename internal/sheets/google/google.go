// Package google reads ledger transactions from a Google Sheets
// spreadsheet, as an alternative source to local XML/CSV ledger files.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	ports "battista/internal/sheets"

	"battista/internal/core"
)

// Config selects the spreadsheet and the credentials used to read it.
// Credentials resolve in order: inline JSON, a file path, then the standard
// GOOGLE_APPLICATION_CREDENTIALS location.
type Config struct {
	SpreadsheetID   string
	ReadRange       string // e.g. "Transactions!A2:E"
	CredentialsJSON string
	CredentialsFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

var _ ports.Source = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	readRange := cfg.ReadRange
	if readRange == "" {
		readRange = "Transactions!A2:E"
	}

	credentialsJSON, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     readRange,
	}, nil
}

func resolveCredentials(cfg Config) ([]byte, error) {
	if json := strings.TrimSpace(cfg.CredentialsJSON); json != "" {
		return []byte(json), nil
	}
	file := strings.TrimSpace(cfg.CredentialsFile)
	if file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if file == "" {
		return nil, errors.New("missing service account credentials")
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return raw, nil
}

// FetchTransactions reads the configured range and converts each row of
// date, amount, category, payment method and optional note into a
// validated transaction. Fully empty rows are skipped.
func (c *Client) FetchTransactions(ctx context.Context) ([]core.Transaction, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get range %s: %w", c.readRange, err)
	}

	transactions, err := parseRows(resp.Values)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Fetched transactions from Google Sheets",
		"spreadsheet_id", c.spreadsheetID,
		"range", c.readRange,
		"count", len(transactions))
	return transactions, nil
}
