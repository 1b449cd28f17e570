// Package format holds the pure formatting utilities shared by the editor,
// the document renderer, and the exporters.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const isoDate = "2006-01-02"

// InvalidDate is returned by Date for input that does not parse.
const InvalidDate = "Invalid Date"

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// Currency formats a number as Indonesian Rupiah with zero fractional
// digits, rounding to the nearest whole unit for display only. Zero formats
// as "Rp0", never as an empty string.
func Currency(v float64) string {
	rounded := math.Round(v)
	return "Rp" + rupiahPrinter.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}

// GroupedNumber renders a number with Indonesian digit grouping and no
// currency symbol, as used inside the document's item rows.
func GroupedNumber(v float64) string {
	return rupiahPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Date renders an ISO date string (YYYY-MM-DD) in "Jan 2, 2006" form. Input
// that does not parse renders the InvalidDate literal; callers upstream do
// not guard against it.
func Date(iso string) string {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return InvalidDate
	}
	return t.Format("Jan 2, 2006")
}

// ISODate renders a time in ISO YYYY-MM-DD form.
func ISODate(t time.Time) string {
	return t.Format(isoDate)
}

// DueDate adds a day offset to an issued date and returns the result in ISO
// form. Pass invoice.DefaultDueDays for the standard payment term.
func DueDate(issued string, days int) (string, error) {
	t, err := time.Parse(isoDate, issued)
	if err != nil {
		return "", err
	}
	return ISODate(t.AddDate(0, 0, days)), nil
}

var nonNumeric = regexp.MustCompile(`[^\d.,]`)

// ParseCurrency parses a user-typed amount: everything but digits and
// separators is stripped and the first comma is normalized to a decimal
// point. Unparseable input yields 0 so the editor stays renderable.
func ParseCurrency(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	normalized := strings.Replace(cleaned, ",", ".", 1)
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return v
}

// Truncate shortens a string to at most length runes, appending an ellipsis
// when anything was cut.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	return string(runes[:length]) + "..."
}
