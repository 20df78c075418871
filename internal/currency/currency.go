// Package currency converts base-currency (RSD) amounts for display.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is a display currency tag.
type Currency string

const (
	RSD Currency = "RSD"
	EUR Currency = "EUR"
)

// DefaultEURRate is the RSD per EUR used when no valid rate is configured.
const DefaultEURRate = 117.0

var (
	// ErrUnknownCurrency is returned for tags other than RSD and EUR.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidRate is returned when a rate is not strictly positive.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)

// ParseCurrency reads a tag case-insensitively. An empty tag means RSD.
func ParseCurrency(tag string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "", string(RSD):
		return RSD, nil
	case string(EUR):
		return EUR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, tag)
	}
}

// ValidRate reports whether rate may be used for conversion.
func ValidRate(rate float64) bool {
	return rate > 0
}

// RateOrDefault returns rate when it is valid and DefaultEURRate otherwise.
func RateOrDefault(rate float64) float64 {
	if ValidRate(rate) {
		return rate
	}
	return DefaultEURRate
}

// Convert returns amount (RSD) expressed in cur, using rate RSD per 1 EUR.
// Amounts are returned unchanged for RSD, and for EUR when rate is not positive.
func Convert(amount float64, cur Currency, rate float64) float64 {
	if cur == EUR && ValidRate(rate) {
		return amount / rate
	}
	return amount
}

// FormatNumber renders v with two decimals, "." grouping and "," as the decimal mark.
func FormatNumber(v float64) string {
	return humanize.FormatFloat("#.###,##", v)
}

// Format converts amount to cur and renders it with the currency tag, e.g. "1.234,56 EUR".
// An invalid rate is replaced by DefaultEURRate so the tag always matches the number.
func Format(amount float64, cur Currency, rate float64) string {
	if cur != EUR {
		cur = RSD
	}
	return FormatNumber(Convert(amount, cur, RateOrDefault(rate))) + " " + string(cur)
}
