package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"battista/internal/cli"
	"battista/internal/config"
	"battista/internal/core"
	"battista/internal/entry"
	"battista/internal/ledger"
	"battista/internal/log"
	"battista/internal/report"
	ports "battista/internal/sheets"
	gsheet "battista/internal/sheets/google"
	"battista/internal/stats"
)

const version = "0.3.0"

// Aggregation runs sharded once the ledger grows past this size.
const parallelThreshold = 10_000

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := config.Load()

	source := flag.String("source", "", "ledger source: xml, csv or sheets (overrides LEDGER_SOURCE)")
	output := flag.String("output", "", "report output path (overrides REPORT_OUTPUT)")
	add := flag.Bool("add", false, "interactively add transactions to the ledger")
	flag.Usage = usage
	flag.Parse()

	applyOverrides(cfg, *source, *output)
	cli.MustValidateConfig(logger, cfg)

	path := flag.Arg(0)
	if path == "" && cfg.LedgerSource != "sheets" {
		usage()
		os.Exit(1)
	}

	today := core.Today(time.Now())

	if *add {
		if cfg.LedgerSource != "xml" {
			logger.Error("Interactive entry only works with the xml source", log.FieldSource, cfg.LedgerSource)
			os.Exit(1)
		}
		session := entry.NewSession(os.Stdin, os.Stdout, today)
		added, err := session.Run(path)
		if err != nil {
			logger.Error("Interactive entry failed", log.FieldError, err, log.FieldPath, path)
			os.Exit(1)
		}
		logger.Info("Ledger updated", log.FieldPath, path, log.FieldTransactions, added)
		return
	}

	ctx := context.Background()
	transactions, budget, err := loadLedger(ctx, logger, cfg, path)
	if err != nil {
		logger.Error("Failed to load ledger", log.FieldError, err, log.FieldSource, cfg.LedgerSource)
		os.Exit(1)
	}
	if len(transactions) == 0 {
		logger.Info("Ledger holds no transactions, nothing to report", log.FieldSource, cfg.LedgerSource)
		return
	}

	collection, err := aggregate(ctx, transactions, today, cfg.Windows)
	if err != nil {
		logger.Error("Aggregation failed", log.FieldError, err, log.FieldTransactions, len(transactions))
		os.Exit(1)
	}

	outPath := reportPath(cfg, path)
	opts := report.Options{SourcePath: path, Version: version}
	if err := report.WriteFile(outPath, collection, budget, today, opts); err != nil {
		logger.Error("Failed to write report", log.FieldError, err, log.FieldOutput, outPath)
		os.Exit(1)
	}
	logger.Info("Detailed report saved",
		log.FieldOutput, outPath,
		log.FieldTransactions, len(transactions),
		log.FieldToday, today.String())
}

func loadLedger(ctx context.Context, logger *log.Logger, cfg *config.Config, path string) ([]core.Transaction, core.Budget, error) {
	switch cfg.LedgerSource {
	case "xml":
		file, err := ledger.ReadFile(path)
		if err != nil {
			return nil, core.Budget{}, err
		}
		return file.Resolve()
	case "csv":
		fh, err := os.Open(path)
		if err != nil {
			return nil, core.Budget{}, fmt.Errorf("open ledger: %w", err)
		}
		defer fh.Close()
		file, err := ledger.ParseCSV(fh)
		if err != nil {
			return nil, core.Budget{}, err
		}
		return file.Resolve()
	case "sheets":
		var source ports.Source
		source, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			ReadRange:       cfg.GoogleReadRange,
			CredentialsJSON: cfg.GoogleCredentialsJSON,
			CredentialsFile: cfg.GoogleCredentialsFile,
		})
		if err != nil {
			return nil, core.Budget{}, err
		}
		logger.WithComponent(log.ComponentSheets).Info("Initialized Google Sheets source")
		transactions, err := source.FetchTransactions(ctx)
		if err != nil {
			return nil, core.Budget{}, err
		}
		return transactions, core.Budget{}, nil
	default:
		return nil, core.Budget{}, fmt.Errorf("unknown ledger source %q", cfg.LedgerSource)
	}
}

func aggregate(ctx context.Context, transactions []core.Transaction, today core.Date, windows []int) (*stats.Collection, error) {
	if len(transactions) >= parallelThreshold {
		return stats.AggregateParallel(ctx, transactions, today, windows, 0)
	}
	return stats.Aggregate(transactions, today, windows)
}

// applyOverrides layers command-line flag values over the environment
// configuration. The merged config is validated afterwards, so an invalid
// environment value that a flag replaces never aborts the run.
func applyOverrides(cfg *config.Config, source, output string) {
	if source != "" {
		cfg.LedgerSource = source
	}
	if output != "" {
		cfg.ReportOutput = output
	}
}

// reportPath picks the report destination: the configured override, or the
// ledger path with its extension swapped for .typ.
func reportPath(cfg *config.Config, ledgerPath string) string {
	if cfg.ReportOutput != "" {
		return cfg.ReportOutput
	}
	if ledgerPath == "" {
		return "report.typ"
	}
	base := strings.TrimSuffix(ledgerPath, filepath.Ext(ledgerPath))
	return base + ".typ"
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <ledger-file>\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Builds a Typst spending report from a transaction ledger,\n")
	fmt.Fprintf(os.Stderr, "or adds transactions interactively with -add.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
