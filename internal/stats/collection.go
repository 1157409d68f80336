package stats

import (
	"fmt"
	"sort"

	"battista/internal/core"
)

type (
	// YearStats is the finalized bucket for one calendar year.
	YearStats struct {
		Year int
		Stats
	}

	// MonthStats is the finalized bucket for one calendar month.
	MonthStats struct {
		Year  int
		Month int // 1-12
		Stats
	}

	// Collection holds three independent partitions of the same transaction
	// stream. Yearly buckets are sorted ascending by year, monthly buckets
	// chronologically; rolling windows are keyed by their day count.
	Collection struct {
		Yearly  []YearStats
		Monthly []MonthStats
		Windows map[int]Stats
	}
)

// WindowSizes returns the configured window day counts in ascending order,
// for deterministic display.
func (c *Collection) WindowSizes() []int {
	sizes := make([]int, 0, len(c.Windows))
	for n := range c.Windows {
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)
	return sizes
}

type monthKey struct {
	year  int
	month int
}

// builder accumulates one partition pass; finalize turns it into a
// Collection.
type builder struct {
	today    core.Date
	windows  []int
	yearly   map[int]*accumulator
	monthly  map[monthKey]*accumulator
	rolling  map[int]*accumulator
	earliest core.Date
	seen     bool
}

func newBuilder(today core.Date, windows []int) *builder {
	return &builder{
		today:   today,
		windows: windows,
		yearly:  make(map[int]*accumulator),
		monthly: make(map[monthKey]*accumulator),
		rolling: make(map[int]*accumulator),
	}
}

// fold routes one transaction into its year bucket, its month bucket and
// every rolling window it falls into, creating accumulators lazily. It also
// tracks the earliest transaction date, needed for period clipping.
func (b *builder) fold(t core.Transaction) {
	if !b.seen || t.Date.Before(b.earliest.Time) {
		b.earliest = t.Date
		b.seen = true
	}

	year := t.Date.Year()
	acc := b.yearly[year]
	if acc == nil {
		acc = newAccumulator()
		b.yearly[year] = acc
	}
	acc.observe(t)

	mk := monthKey{year: year, month: t.Date.Month()}
	acc = b.monthly[mk]
	if acc == nil {
		acc = newAccumulator()
		b.monthly[mk] = acc
	}
	acc.observe(t)

	for _, n := range b.windows {
		if !WindowContains(b.today, t.Date, n) {
			continue
		}
		acc = b.rolling[n]
		if acc == nil {
			acc = newAccumulator()
			b.rolling[n] = acc
		}
		acc.observe(t)
	}
}

// merge absorbs a partial builder produced over a shard of the stream.
func (b *builder) merge(other *builder) {
	if other.seen && (!b.seen || other.earliest.Before(b.earliest.Time)) {
		b.earliest = other.earliest
		b.seen = b.seen || other.seen
	}
	for year, acc := range other.yearly {
		if mine := b.yearly[year]; mine != nil {
			mine.merge(acc)
		} else {
			b.yearly[year] = acc
		}
	}
	for mk, acc := range other.monthly {
		if mine := b.monthly[mk]; mine != nil {
			mine.merge(acc)
		} else {
			b.monthly[mk] = acc
		}
	}
	for n, acc := range other.rolling {
		if mine := b.rolling[n]; mine != nil {
			mine.merge(acc)
		} else {
			b.rolling[n] = acc
		}
	}
}

// finalize computes every bucket's clipped period, snapshots the
// accumulators and assembles the sorted Collection.
func (b *builder) finalize() (*Collection, error) {
	c := &Collection{Windows: make(map[int]Stats, len(b.rolling))}

	for year, acc := range b.yearly {
		days, err := yearPeriodDays(year, b.earliest, b.today)
		if err != nil {
			return nil, err
		}
		s, err := acc.snapshot(days)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		c.Yearly = append(c.Yearly, YearStats{Year: year, Stats: s})
	}
	sort.Slice(c.Yearly, func(i, j int) bool {
		return c.Yearly[i].Year < c.Yearly[j].Year
	})

	for mk, acc := range b.monthly {
		days, err := monthPeriodDays(mk.year, mk.month, b.earliest, b.today)
		if err != nil {
			return nil, err
		}
		s, err := acc.snapshot(days)
		if err != nil {
			return nil, fmt.Errorf("month %d/%d: %w", mk.month, mk.year, err)
		}
		c.Monthly = append(c.Monthly, MonthStats{Year: mk.year, Month: mk.month, Stats: s})
	}
	sort.Slice(c.Monthly, func(i, j int) bool {
		return c.Monthly[i].Year*12+c.Monthly[i].Month < c.Monthly[j].Year*12+c.Monthly[j].Month
	})

	// Rolling windows are defined relative to today, not the dataset, so the
	// denominator is the window size itself with no clipping.
	for n, acc := range b.rolling {
		s, err := acc.snapshot(n)
		if err != nil {
			return nil, fmt.Errorf("last %d days: %w", n, err)
		}
		c.Windows[n] = s
	}

	return c, nil
}

// Aggregate builds the full collection of yearly, monthly and rolling-window
// statistics from a transaction stream in a single pass. The reference date
// today is an explicit parameter so the result is a deterministic function
// of its inputs. Transactions dated after today make their bucket's clipped
// period empty and surface as an error.
func Aggregate(transactions []core.Transaction, today core.Date, windows []int) (*Collection, error) {
	b := newBuilder(today, windows)
	for _, t := range transactions {
		b.fold(t)
	}
	return b.finalize()
}
