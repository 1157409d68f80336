// Package stats turns a transaction stream into normalized spending
// statistics bucketed by calendar year, calendar month and rolling
// last-N-day windows.
//
// All accumulation happens in integer minor units; floating-point values
// appear only in the immutable Stats snapshots produced at finalization.
package stats

import (
	"fmt"
	"sort"

	"battista/internal/core"
)

// Entry is one row of a bucket breakdown, in major units.
type Entry struct {
	Key    string
	Amount float64
}

// Stats is the immutable snapshot of a finalized bucket. Breakdown slices
// are sorted by descending amount; equal amounts order by ascending key so
// repeated aggregations of the same input are bit-identical.
type Stats struct {
	Total              float64
	PerDay             float64
	AverageTransaction float64
	ByCategory         []Entry
	ByPaymentMethod    []Entry
	ByNote             []Entry
	TransactionCount   uint64

	// TotalCents keeps the exact minor-unit total next to the display value.
	TotalCents int64
}

// accumulator holds the running minor-unit sums for one bucket.
type accumulator struct {
	total           int64
	count           uint64
	byCategory      map[string]int64
	byPaymentMethod map[string]int64
	byNote          map[string]int64
}

func newAccumulator() *accumulator {
	return &accumulator{
		byCategory:      make(map[string]int64),
		byPaymentMethod: make(map[string]int64),
		byNote:          make(map[string]int64),
	}
}

// observe folds one transaction into the bucket. Any category, payment
// method or note string is accepted verbatim as a key.
func (a *accumulator) observe(t core.Transaction) {
	cents := t.Amount.Cents
	a.total += cents
	a.byCategory[t.Category] += cents
	a.byPaymentMethod[t.PaymentMethod] += cents
	a.byNote[t.Note] += cents
	a.count++
}

// merge adds another accumulator's sums into this one. Updates are
// commutative, so shard order does not matter.
func (a *accumulator) merge(other *accumulator) {
	a.total += other.total
	a.count += other.count
	for k, v := range other.byCategory {
		a.byCategory[k] += v
	}
	for k, v := range other.byPaymentMethod {
		a.byPaymentMethod[k] += v
	}
	for k, v := range other.byNote {
		a.byNote[k] += v
	}
}

// snapshot finalizes the bucket over a period of periodDays days. A bucket
// with zero transactions or a non-positive period is an invariant violation,
// not a user-facing condition.
func (a *accumulator) snapshot(periodDays int) (Stats, error) {
	if a.count == 0 {
		return Stats{}, fmt.Errorf("finalize bucket: zero transactions")
	}
	if periodDays <= 0 {
		return Stats{}, fmt.Errorf("finalize bucket: invalid period of %d days", periodDays)
	}

	total := float64(a.total) / 100.0
	return Stats{
		Total:              total,
		PerDay:             total / float64(periodDays),
		AverageTransaction: total / float64(a.count),
		ByCategory:         sortedEntries(a.byCategory),
		ByPaymentMethod:    sortedEntries(a.byPaymentMethod),
		ByNote:             sortedEntries(a.byNote),
		TransactionCount:   a.count,
		TotalCents:         a.total,
	}, nil
}

func sortedEntries(m map[string]int64) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Amount: float64(v) / 100.0})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
