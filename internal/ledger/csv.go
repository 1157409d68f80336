package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV reads transactions from tabular form. The expected header is
// date,amount,category,payment_method,note; the note column may be omitted.
// CSV ledgers carry no budget entries.
func ParseCSV(r io.Reader) (*File, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv ledger: %w", err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	f := &File{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv ledger: %w", err)
		}
		line++
		get := func(col int) string {
			if col < 0 || col >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[col])
		}
		rt := RawTransaction{
			Date:          get(idx["date"]),
			Amount:        get(idx["amount"]),
			Category:      get(idx["category"]),
			PaymentMethod: get(idx["payment_method"]),
			Note:          get(idx["note"]),
		}
		if rt.Date == "" || rt.Amount == "" || rt.Category == "" || rt.PaymentMethod == "" {
			return nil, fmt.Errorf("parse csv ledger: line %d: missing required field", line)
		}
		f.Transactions = append(f.Transactions, rt)
	}
	return f, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := map[string]int{
		"date": -1, "amount": -1, "category": -1, "payment_method": -1, "note": -1,
	}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, known := idx[name]; known {
			idx[name] = i
		}
	}
	for _, required := range []string{"date", "amount", "category", "payment_method"} {
		if idx[required] == -1 {
			return nil, fmt.Errorf("parse csv ledger: missing %s column", required)
		}
	}
	return idx, nil
}
