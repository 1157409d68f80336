// Package core provides the battista domain types: dates, money in integer
// minor units, transactions and budgets.
//
// This file contains parsing of monetary amounts from ledger strings. Amounts
// stay in cents everywhere; floats appear only in display-level conversions.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmountCents converts a signed decimal string to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and at
// most two fractional digits; a single fractional digit means tenths
// ("3.5" -> 350). Three or more fractional digits are rejected so that the
// minor-unit component always lands in [0, 99].
//
// Examples:
//
//	ParseAmountCents("12.34") -> 1234, nil
//	ParseAmountCents("-5")    -> -500, nil
//	ParseAmountCents("3.5")   -> 350, nil
//	ParseAmountCents("1.005") -> 0, ErrInvalidAmount
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if units > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	switch len(fracPart) {
	case 1:
		fracCents = int64(fracPart[0]-'0') * 10
	case 2:
		fracCents = int64(fracPart[0]-'0')*10 + int64(fracPart[1]-'0')
	}

	cents := units*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// Euros returns the major-unit value as a float64 for display purposes.
// Note: use cents for calculations to avoid floating-point precision issues.
func (m Money) Euros() float64 {
	return float64(m.Cents) / 100.0
}
