package ledger

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a raw ledger from XML. The format is a stream of top-level
// <budget/> and <transaction/> elements carrying their data in attributes;
// there is no document root. Unknown elements are skipped.
func Parse(r io.Reader) (*File, error) {
	dec := xml.NewDecoder(r)
	f := &File{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ledger: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := attrMap(start)
		switch start.Name.Local {
		case "budget":
			if attrs["amount"] == "" || attrs["duration"] == "" {
				return nil, fmt.Errorf("parse ledger: budget element missing amount or duration")
			}
			f.Budgets = append(f.Budgets, RawBudget{
				Category: attrs["category"],
				Amount:   attrs["amount"],
				Duration: attrs["duration"],
			})
		case "transaction":
			for _, required := range []string{"amount", "category", "date", "payment-method"} {
				if attrs[required] == "" {
					return nil, fmt.Errorf("parse ledger: transaction missing %s attribute", required)
				}
			}
			f.Transactions = append(f.Transactions, RawTransaction{
				Amount:        strings.TrimSpace(attrs["amount"]),
				Category:      strings.TrimSpace(attrs["category"]),
				Date:          strings.TrimSpace(attrs["date"]),
				PaymentMethod: strings.TrimSpace(attrs["payment-method"]),
				Note:          attrs["note"],
			})
		}
		if err := dec.Skip(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parse ledger: %w", err)
		}
	}
	return f, nil
}

// ReadFile parses the ledger file at path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

func attrMap(e xml.StartElement) map[string]string {
	m := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		m[a.Name.Local] = a.Value
	}
	return m
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
