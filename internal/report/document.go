package report

import (
	"fmt"
	"sort"

	"battista/internal/core"
	"battista/internal/stats"
)

// The document types below hold fully formatted values so the template
// stays purely structural.
type (
	document struct {
		Source    string
		TitleDate string
		DocDate   string
		Version   string

		HasBudget     bool
		BudgetRows    []budgetRow
		BudgetMonthly string

		Overview *overview
		Windows  []windowTable
	}

	budgetRow struct {
		Category string
		Monthly  string
		Percent  string
	}

	overview struct {
		Average   string
		Color     string
		Percent   string
		Monthly   string
		Balance   string // saved/lost remark, empty when on budget
		BalanceUp bool   // true when money was saved
		OnBudget  bool
		Bars      []chartBar
	}

	chartBar struct {
		Label  string
		Amount string
		Over   string // non-empty splits the bar into (Amount, Over)
	}

	windowTable struct {
		Days         int
		Rows         []windowRow
		Total        string
		TotalAllowed allowedCell
		Biggest      []biggestRow
	}

	windowRow struct {
		Category string
		Amount   string
		Percent  string
		Allowed  allowedCell
	}

	allowedCell struct {
		Text  string
		Color string
	}

	biggestRow struct {
		Rank   int
		Note   string
		Amount string
	}
)

func buildDocument(c *stats.Collection, budget core.Budget, today core.Date, opts Options) document {
	doc := document{
		Source:    opts.SourcePath,
		TitleDate: today.Format("January 2, 2006"),
		DocDate:   today.Format("2 January 2006"),
		Version:   opts.Version,
		HasBudget: budget.Configured(),
	}

	if doc.HasBudget {
		doc.BudgetRows = budgetRows(budget)
		doc.BudgetMonthly = amount(budget.Total * 30)
		doc.Overview = buildOverview(c, budget, today)
	}

	for _, n := range c.WindowSizes() {
		doc.Windows = append(doc.Windows, buildWindowTable(n, c.Windows[n], budget))
	}
	return doc
}

func budgetRows(budget core.Budget) []budgetRow {
	categories := make([]string, 0, len(budget.PerCategory))
	for name := range budget.PerCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	rows := make([]budgetRow, 0, len(categories))
	for _, name := range categories {
		perDay := budget.PerCategory[name]
		row := budgetRow{
			Category: name,
			Monthly:  amount(perDay * 30),
		}
		if budget.Total != 0 {
			row.Percent = fmt.Sprintf("%.0f%%", perDay/budget.Total*100)
		}
		rows = append(rows, row)
	}
	return rows
}

// buildOverview summarizes the last 12 monthly buckets against the overall
// allowance: a normalized per-30-day average, a saved/lost remark, and one
// chart bar per month with the over-budget share split out.
func buildOverview(c *stats.Collection, budget core.Budget, today core.Date) *overview {
	months := c.Monthly
	if len(months) > 12 {
		months = months[len(months)-12:]
	}
	if len(months) == 0 {
		return nil
	}

	var total, totalDays float64
	for _, m := range months {
		total += m.Total
		totalDays += float64(stats.DaysInMonth(core.NewDate(m.Year, m.Month, 1)))
	}

	average := total * 30 / totalDays
	percent := average * 100 / (budget.Total * 30)
	color := "green"
	if percent > 100 {
		color = "red"
	} else if percent > 75 {
		color = "orange"
	}

	o := &overview{
		Average: amount(average),
		Color:   color,
		Percent: fmt.Sprintf("%.0f%%", percent),
		Monthly: amount(budget.Total * 30),
	}
	switch {
	case percent < 95:
		o.Balance = amount(budget.Total*totalDays - total)
		o.BalanceUp = true
	case percent > 100:
		o.Balance = amount(total - budget.Total*totalDays)
	default:
		o.OnBudget = true
	}

	for _, m := range months {
		first := core.NewDate(m.Year, m.Month, 1)
		allowed := float64(stats.DaysInMonth(first)) * budget.Total
		if m.Year == today.Year() && m.Month == today.Month() {
			// The running month only grants the days elapsed so far.
			allowed = float64(first.DaysUntil(today)+1) * budget.Total
		}
		bar := chartBar{Label: fmt.Sprintf("%02d/%02d", m.Month, m.Year%100)}
		if m.Total > allowed {
			bar.Amount = amount(allowed)
			bar.Over = amount(m.Total - allowed)
		} else {
			bar.Amount = amount(m.Total)
		}
		o.Bars = append(o.Bars, bar)
	}
	return o
}

func buildWindowTable(days int, s stats.Stats, budget core.Budget) windowTable {
	t := windowTable{
		Days:  days,
		Total: amount(s.Total),
	}

	// Per-category allowance cells are suppressed once the overall budget
	// for the window is blown; only the total row keeps its colour then.
	overallOK := budget.Total*float64(days) > s.Total

	for _, e := range s.ByCategory {
		row := windowRow{
			Category: e.Key,
			Amount:   amount(e.Amount),
		}
		if s.Total != 0 {
			row.Percent = fmt.Sprintf("%.2f%%", e.Amount/s.Total*100)
		}
		if allowance, ok := budget.PerCategory[e.Key]; ok && overallOK {
			row.Allowed = allowanceCell(e.Amount, allowance, days)
		} else {
			row.Allowed = allowedCell{Color: "black"}
		}
		t.Rows = append(t.Rows, row)
	}

	if budget.Total > 0 {
		t.TotalAllowed = allowanceCell(s.Total, budget.Total, days)
	} else {
		t.TotalAllowed = allowedCell{Color: "black"}
	}

	// Long windows get a biggest-expenses section keyed by note.
	if days > 31 {
		for _, e := range s.ByNote {
			if e.Amount <= 50 || e.Key == "" {
				continue
			}
			t.Biggest = append(t.Biggest, biggestRow{
				Rank:   len(t.Biggest) + 1,
				Note:   e.Key,
				Amount: amount(e.Amount),
			})
			if len(t.Biggest) == 10 {
				break
			}
		}
	}
	return t
}

func allowanceCell(total, perDay float64, days int) allowedCell {
	check := stats.EvaluateBudget(total, perDay, days)
	cell := allowedCell{Color: "black"}
	if check.Verdict == stats.VerdictNone {
		return cell
	}
	cell.Text = amount(check.Allowed)
	switch check.Verdict {
	case stats.VerdictOnTrack:
		cell.Color = "green"
	case stats.VerdictWarning:
		cell.Color = "orange"
	case stats.VerdictOver:
		cell.Color = "red"
	}
	return cell
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
