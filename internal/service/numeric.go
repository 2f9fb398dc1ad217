// Package service contains the business logic for the area/length service:
// the conversion calculator, the reconciliation engine, the summary formatter,
// the field-binding form and the catalog services around them.
package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/area-length-service/internal/domain/model"
)

// numericPrefix matches the leading number of a field value the way browsers
// parse free-form numeric input ("12.5 m" -> 12.5).
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Round2 rounds x to two decimals, half-up on the scaled value. Values too
// large to scale are returned unchanged.
func Round2(x float64) float64 {
	scaled := x * 100
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return x
	}
	return math.Floor(scaled+0.5) / 100
}

// ParseLocaleNumber parses a decimal-comma or decimal-point number. Only the
// first comma is treated as a decimal separator. Text that does not start with
// a finite number yields fallback.
func ParseLocaleNumber(text string, fallback float64) float64 {
	s := strings.TrimSpace(strings.Replace(text, ",", ".", 1))
	m := numericPrefix.FindString(s)
	if m == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// IsPositiveInteger reports whether x is a whole number greater than zero.
func IsPositiveInteger(x float64) bool {
	return x > 0 && x == math.Floor(x)
}

// FormatCurrency renders amount with the given settings. Zero-value settings
// fall back to DefaultCurrency.
func FormatCurrency(amount float64, settings model.CurrencySettings) string {
	if settings.IsZero() {
		settings = model.DefaultCurrency()
	}
	if settings.DecimalSeparator == "" {
		settings.DecimalSeparator = "."
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	places := settings.Decimals
	if places < 0 {
		places = 0
	}

	fixed := decimal.NewFromFloat(amount).StringFixed(int32(places))
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	number := groupThousands(intPart, settings.ThousandSeparator)
	if fracPart != "" {
		number += settings.DecimalSeparator + fracPart
	}
	if negative {
		number = "-" + number
	}

	switch settings.Position {
	case model.SymbolLeft:
		return settings.Symbol + number
	case model.SymbolLeftSpace:
		return settings.Symbol + " " + number
	case model.SymbolRight:
		return number + settings.Symbol
	default:
		return number + " " + settings.Symbol
	}
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatMeasurement renders value with two decimals followed by the unit label.
func FormatMeasurement(value float64, unit string) string {
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + unit
}
