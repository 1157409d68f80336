package main

import (
	"testing"

	"battista/internal/config"
)

func TestApplyOverridesReplacesInvalidEnvValue(t *testing.T) {
	cfg := &config.Config{
		LedgerSource: "bogus",
		Windows:      []int{7, 14, 30, 365},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected the unmerged config to be invalid")
	}

	applyOverrides(cfg, "xml", "")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("merged config should validate: %v", err)
	}
	if cfg.LedgerSource != "xml" {
		t.Fatalf("LedgerSource = %q, want xml", cfg.LedgerSource)
	}
}

func TestApplyOverridesKeepsEnvValues(t *testing.T) {
	cfg := &config.Config{
		LedgerSource: "csv",
		ReportOutput: "out.typ",
		Windows:      []int{30},
	}
	applyOverrides(cfg, "", "")
	if cfg.LedgerSource != "csv" || cfg.ReportOutput != "out.typ" {
		t.Fatalf("config changed without overrides: %+v", cfg)
	}

	applyOverrides(cfg, "", "monthly.typ")
	if cfg.ReportOutput != "monthly.typ" {
		t.Fatalf("ReportOutput = %q, want monthly.typ", cfg.ReportOutput)
	}
}

func TestReportPath(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.Config
		ledger string
		want   string
	}{
		{"extension swapped", config.Config{}, "data/ledger.xml", "data/ledger.typ"},
		{"override wins", config.Config{ReportOutput: "out/report.typ"}, "ledger.xml", "out/report.typ"},
		{"no ledger path", config.Config{}, "", "report.typ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reportPath(&tc.cfg, tc.ledger); got != tc.want {
				t.Fatalf("reportPath = %q, want %q", got, tc.want)
			}
		})
	}
}
