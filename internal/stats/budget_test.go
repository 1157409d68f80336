package stats

import "testing"

func TestEvaluateBudget(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		perDay    float64
		days      int
		verdict   Verdict
		remaining float64
	}{
		{"well under", 10, 10, 7, VerdictOnTrack, 60},
		{"close to the limit", 69, 10, 7, VerdictWarning, 1},
		{"exactly at the limit", 70, 10, 7, VerdictWarning, 0},
		{"boundary of warning band", 67.5, 10, 7, VerdictOnTrack, 2.5},
		{"over", 75, 10, 7, VerdictOver, -5},
		{"no allowance configured", 100, 0, 7, VerdictNone, 0},
		{"no elapsed days", 100, 10, 0, VerdictNone, 0},
	}
	for _, tc := range cases {
		got := EvaluateBudget(tc.total, tc.perDay, tc.days)
		if got.Verdict != tc.verdict {
			t.Fatalf("%s: verdict = %v, want %v", tc.name, got.Verdict, tc.verdict)
		}
		if got.Allowed != tc.remaining {
			t.Fatalf("%s: allowed = %v, want %v", tc.name, got.Allowed, tc.remaining)
		}
	}
}

func TestVerdictString(t *testing.T) {
	cases := map[Verdict]string{
		VerdictNone:    "none",
		VerdictOnTrack: "on-track",
		VerdictWarning: "warning",
		VerdictOver:    "over",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", v, got, want)
		}
	}
}
