package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Ledger source selection
	LedgerSource string

	// Rolling window sizes, in days
	Windows []int

	// Report output path override (defaults to the ledger path with .typ)
	ReportOutput string

	// Google Sheets source
	GoogleSpreadsheetID   string
	GoogleReadRange       string
	GoogleCredentialsFile string
	GoogleCredentialsJSON string
}

func Load() *Config {
	cfg := &Config{
		LedgerSource: getEnv("LEDGER_SOURCE", "xml"),
		Windows:      getEnvInts("REPORT_WINDOWS", []int{7, 14, 30, 365}),
		ReportOutput: getEnv("REPORT_OUTPUT", ""),

		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleReadRange:       getEnv("GOOGLE_READ_RANGE", "Transactions!A2:E"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate ledger source
	validSources := []string{"xml", "csv", "sheets"}
	isValidSource := false
	for _, source := range validSources {
		if c.LedgerSource == source {
			isValidSource = true
			break
		}
	}
	if !isValidSource {
		errors = append(errors, fmt.Sprintf("invalid ledger source '%s': must be one of %v", c.LedgerSource, validSources))
	}

	// Validate window sizes
	if len(c.Windows) == 0 {
		errors = append(errors, "at least one report window is required")
	}
	seen := make(map[int]bool, len(c.Windows))
	for _, days := range c.Windows {
		if days < 1 {
			errors = append(errors, fmt.Sprintf("invalid report window %d: must be at least 1 day", days))
		} else if seen[days] {
			errors = append(errors, fmt.Sprintf("duplicate report window %d", days))
		}
		seen[days] = true
	}

	// Validate Google Sheets configuration if the source is sheets
	if c.LedgerSource == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using the sheets source")
		}
		if c.GoogleReadRange == "" {
			errors = append(errors, "Google read range cannot be empty when using the sheets source")
		}
		if c.GoogleCredentialsFile != "" {
			if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google credentials file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInts(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		out = append(out, i)
	}
	return out
}
