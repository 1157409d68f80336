// Package entry implements the interactive transaction entry mode: it
// prompts for new ledger records on a line-oriented console, carrying
// defaults over from the most recent transaction, and rewrites the ledger
// file sorted with a backup of the previous contents.
package entry

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"battista/internal/core"
	"battista/internal/ledger"
)

// Session drives one interactive entry run. Input and output are injected
// so the prompt flow is testable.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	today core.Date
}

func NewSession(in io.Reader, out io.Writer, today core.Date) *Session {
	return &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		today: today,
	}
}

// Run loads the ledger at path, prompts for transactions until the user
// declines to continue (or input ends), then rewrites the file sorted,
// keeping a .bak copy. It returns the number of transactions added.
func (s *Session) Run(path string) (int, error) {
	f, err := ledger.ReadFile(path)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(s.out, "=== Transaction Entry Mode ===\n\n")

	defaults := s.defaultsFrom(f)
	s.printContext(f)

	added := 0
	for {
		fmt.Fprintf(s.out, "\n--- Transaction #%d ---\n", added+1)

		t, ok := s.promptTransaction(&defaults)
		if !ok {
			break
		}
		f.Transactions = append(f.Transactions, t)
		added++
		fmt.Fprintf(s.out, "%s\n", t)
		fmt.Fprintf(s.out, "Transaction added!\n")

		answer, ok := s.prompt("Add another transaction? (y/n)")
		if !ok {
			break
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "" && !strings.HasPrefix(answer, "y") {
			break
		}
	}

	if added == 0 {
		return 0, nil
	}
	if err := ledger.WriteFile(path, f); err != nil {
		return 0, err
	}
	return added, nil
}

type entryDefaults struct {
	date          string
	category      string
	paymentMethod string
}

// defaultsFrom seeds prompt defaults from the most recent transaction, or
// from today when the ledger is empty.
func (s *Session) defaultsFrom(f *ledger.File) entryDefaults {
	d := entryDefaults{date: s.today.String()}
	var latest core.Date
	for _, t := range f.Transactions {
		td, err := core.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if latest.IsZero() || td.After(latest.Time) {
			latest = td
			d.date = t.Date
			d.category = t.Category
			d.paymentMethod = t.PaymentMethod
		}
	}
	return d
}

// printContext shows known categories, budget categories and the most
// recent day's transactions before prompting starts.
func (s *Session) printContext(f *ledger.File) {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range f.Transactions {
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	sort.Strings(categories)
	if len(categories) > 0 {
		fmt.Fprintf(s.out, "Existing categories: %s.\n", strings.Join(categories, ", "))
	}

	var budgetCategories []string
	for _, b := range f.Budgets {
		if b.Category != "" {
			budgetCategories = append(budgetCategories, b.Category)
		}
	}
	if len(budgetCategories) > 0 {
		fmt.Fprintf(s.out, "Budget categories: %s.\n", strings.Join(budgetCategories, ", "))
	}

	var lastDate core.Date
	for _, t := range f.Transactions {
		if td, err := core.ParseDate(t.Date); err == nil && td.After(lastDate.Time) {
			lastDate = td
		}
	}
	if lastDate.IsZero() {
		return
	}
	fmt.Fprintf(s.out, "Last transactions:\n")
	for _, t := range f.Transactions {
		if td, err := core.ParseDate(t.Date); err == nil && td.Equal(lastDate.Time) {
			fmt.Fprintf(s.out, " - %s\n", t)
		}
	}
}

func (s *Session) promptTransaction(defaults *entryDefaults) (ledger.RawTransaction, bool) {
	date, ok := s.promptDate(defaults.date)
	if !ok {
		return ledger.RawTransaction{}, false
	}
	category, ok := s.promptNonEmpty("Category", defaults.category)
	if !ok {
		return ledger.RawTransaction{}, false
	}
	amount, ok := s.promptAmount()
	if !ok {
		return ledger.RawTransaction{}, false
	}
	paymentMethod, ok := s.promptNonEmpty("Payment Method", defaults.paymentMethod)
	if !ok {
		return ledger.RawTransaction{}, false
	}
	note, ok := s.prompt("Note [optional]")
	if !ok {
		return ledger.RawTransaction{}, false
	}

	defaults.date = date
	defaults.category = category
	defaults.paymentMethod = paymentMethod

	return ledger.RawTransaction{
		Amount:        amount,
		Category:      category,
		Date:          date,
		PaymentMethod: paymentMethod,
		Note:          strings.TrimSpace(note),
	}, true
}

// prompt prints a label and reads one line. The second return value is
// false when input is exhausted.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s > ", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) promptNonEmpty(label, def string) (string, bool) {
	for {
		shown := label
		if def != "" {
			shown = fmt.Sprintf("%s [%s]", label, def)
		}
		input, ok := s.prompt(shown)
		if !ok {
			return "", false
		}
		if input == "" {
			input = def
		}
		if input != "" {
			return input, true
		}
	}
}

func (s *Session) promptAmount() (string, bool) {
	for {
		input, ok := s.prompt("Amount")
		if !ok {
			return "", false
		}
		if _, err := core.ParseAmountCents(input); err == nil {
			return input, true
		}
		fmt.Fprintf(s.out, "Please enter a valid amount (e.g., 15.50)\n")
	}
}

// promptDate reads a date, accepting the dd/mm/yyyy form, the keyword
// "today", or a shorthand completed from the default: a lone day keeps the
// default month and year, day/month keeps the year.
func (s *Session) promptDate(def string) (string, bool) {
	for {
		input, ok := s.prompt(fmt.Sprintf("Date [%s] (or 'today')", def))
		if !ok {
			return "", false
		}
		if input == "" {
			return def, true
		}
		if strings.EqualFold(input, "today") {
			return s.today.String(), true
		}
		if completed, err := completeDate(input, def); err == nil {
			return completed, true
		}
		fmt.Fprintf(s.out, "Invalid date format. Please use dd/mm/yyyy.\n")
	}
}

func completeDate(input, def string) (string, error) {
	if d, err := core.ParseDate(input); err == nil {
		return d.String(), nil
	}
	defDate, err := core.ParseDate(def)
	if err != nil {
		return "", err
	}

	parts := strings.Split(input, "/")
	numbers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", fmt.Errorf("bad date %q", input)
		}
		numbers = append(numbers, n)
	}

	var candidate string
	switch len(numbers) {
	case 1:
		candidate = fmt.Sprintf("%02d/%02d/%d", numbers[0], defDate.Month(), defDate.Year())
	case 2:
		candidate = fmt.Sprintf("%02d/%02d/%d", numbers[0], numbers[1], defDate.Year())
	default:
		return "", fmt.Errorf("bad date %q", input)
	}
	d, err := core.ParseDate(candidate)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
