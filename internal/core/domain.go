package core

import (
	"errors"
	"strings"
	"time"
)

// LedgerDateLayout is the date layout used by ledger files (dd/mm/yyyy).
const LedgerDateLayout = "02/01/2006"

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single dated ledger entry. Amounts are signed minor
	// units; negative values record refunds.
	Transaction struct {
		Amount        Money
		Date          Date
		Category      string
		PaymentMethod string
		Note          string
	}

	// Budget holds per-day spending allowances, keyed by category, plus an
	// overall per-day allowance.
	Budget struct {
		PerCategory map[string]float64
		Total       float64
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyPaymentMethod = errors.New("empty payment method")
)

// NewDate creates a Date at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a ledger date in dd/mm/yyyy form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(LedgerDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Today converts a wall-clock time to a Date, discarding the time of day.
func Today(now time.Time) Date {
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

// Min returns the earlier of the two dates.
func (d Date) Min(other Date) Date {
	if other.Before(d.Time) {
		return other
	}
	return d
}

// Max returns the later of the two dates.
func (d Date) Max(other Date) Date {
	if other.After(d.Time) {
		return other
	}
	return d
}

func (d Date) String() string {
	return d.Format(LedgerDateLayout)
}

func (m Money) Validate() error {
	if m.Cents == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return ErrEmptyPaymentMethod
	}
	return nil
}

// Normalize fills the overall allowance from the per-category ones when it
// was not configured explicitly.
func (b *Budget) Normalize() {
	if b.Total != 0 {
		return
	}
	for _, v := range b.PerCategory {
		b.Total += v
	}
}

// Configured reports whether any allowance is set.
func (b Budget) Configured() bool {
	return b.Total != 0 || len(b.PerCategory) > 0
}
