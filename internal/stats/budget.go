package stats

// Verdict classifies a period total against a configured allowance.
type Verdict int

const (
	// VerdictNone means no allowance is configured for the bucket.
	VerdictNone Verdict = iota
	VerdictOnTrack
	VerdictWarning
	VerdictOver
)

func (v Verdict) String() string {
	switch v {
	case VerdictOnTrack:
		return "on-track"
	case VerdictWarning:
		return "warning"
	case VerdictOver:
		return "over"
	default:
		return "none"
	}
}

// BudgetCheck carries the remaining allowance for a period and its verdict.
type BudgetCheck struct {
	Allowed float64
	Verdict Verdict
}

// EvaluateBudget compares a period total (major units) against a per-day
// allowance over periodDays days. Remaining allowance below a quarter of the
// daily rate counts as a warning. A zero allowance means no budget is
// configured and never classifies; there is no division in that case.
func EvaluateBudget(total, perDayAllowance float64, periodDays int) BudgetCheck {
	if perDayAllowance == 0 || periodDays <= 0 {
		return BudgetCheck{Verdict: VerdictNone}
	}
	allowed := perDayAllowance*float64(periodDays) - total
	switch {
	case allowed < 0:
		return BudgetCheck{Allowed: allowed, Verdict: VerdictOver}
	case allowed/perDayAllowance < 0.25:
		return BudgetCheck{Allowed: allowed, Verdict: VerdictWarning}
	default:
		return BudgetCheck{Allowed: allowed, Verdict: VerdictOnTrack}
	}
}
