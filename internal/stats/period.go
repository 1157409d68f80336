package stats

import (
	"fmt"

	"battista/internal/core"
)

// DaysInMonth returns the number of calendar days in the month containing d,
// computed by subtracting the first of the month from the first of the next
// month so leap years come out right for free.
func DaysInMonth(d core.Date) int {
	first := core.NewDate(d.Year(), d.Month(), 1)
	var next core.Date
	if d.Month() == 12 {
		next = core.NewDate(d.Year()+1, 1, 1)
	} else {
		next = core.NewDate(d.Year(), d.Month()+1, 1)
	}
	return first.DaysUntil(next)
}

// DaysInYear returns the number of calendar days in the year containing d.
func DaysInYear(d core.Date) int {
	return core.NewDate(d.Year(), 1, 1).DaysUntil(core.NewDate(d.Year()+1, 1, 1))
}

// WindowContains reports whether a transaction dated txDate falls inside the
// rolling window of the last n days. Membership is strict: today minus the
// transaction date must be less than n days, so a window of 7 covers today
// and the six days before it.
func WindowContains(today, txDate core.Date, n int) bool {
	return txDate.DaysUntil(today) < n
}

// clipPeriodDays computes the daily-average denominator for the nominal
// period [periodStart, nextPeriodStart). The nominal span is intersected
// with [earliest, today+1): a bucket cannot claim days before data
// collection began nor days beyond today. The result never exceeds the
// period's calendar length.
//
// A clipped span of exactly zero days (all data on the period's first day,
// with today the same day the clipping ends) clamps to a minimum of one day
// rather than failing. A negative span means the bucket lies entirely
// outside [earliest, today] and is reported as an invariant violation.
func clipPeriodDays(periodStart, nextPeriodStart, earliest, today core.Date) (int, error) {
	calendarDays := periodStart.DaysUntil(nextPeriodStart)

	start := periodStart.Max(earliest)
	end := nextPeriodStart.Min(today.AddDays(1))
	span := start.DaysUntil(end)
	if span < 0 {
		return 0, fmt.Errorf("period %s..%s has no overlap with [%s, %s]",
			periodStart, nextPeriodStart, earliest, today)
	}
	if span == 0 {
		span = 1
	}
	if calendarDays < span {
		return calendarDays, nil
	}
	return span, nil
}

// yearPeriodDays returns the clipped denominator for the year bucket.
func yearPeriodDays(year int, earliest, today core.Date) (int, error) {
	days, err := clipPeriodDays(
		core.NewDate(year, 1, 1),
		core.NewDate(year+1, 1, 1),
		earliest, today)
	if err != nil {
		return 0, fmt.Errorf("year %d: %w", year, err)
	}
	return days, nil
}

// monthPeriodDays returns the clipped denominator for the (year, month)
// bucket. December rolls into January of the following year.
func monthPeriodDays(year, month int, earliest, today core.Date) (int, error) {
	first := core.NewDate(year, month, 1)
	var next core.Date
	if month == 12 {
		next = core.NewDate(year+1, 1, 1)
	} else {
		next = core.NewDate(year, month+1, 1)
	}
	days, err := clipPeriodDays(first, next, earliest, today)
	if err != nil {
		return 0, fmt.Errorf("month %d/%d: %w", month, year, err)
	}
	return days, nil
}
