package calc

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printerNGN = message.NewPrinter(language.MustParse("en-NG"))
	printerUSD = message.NewPrinter(language.MustParse("en-US"))
)

func printerFor(c Currency) *message.Printer {
	if c == NGN {
		return printerNGN
	}
	return printerUSD
}

func symbolFor(c Currency) string {
	if c == NGN {
		return "₦" // naira sign
	}
	return "$"
}

// Format renders an amount with locale-correct grouping, zero decimal
// places, and the currency symbol. Used by the on-screen preview.
func Format(amount float64, c Currency) string {
	return symbolFor(c) + printerFor(c).Sprintf("%d", int64(math.Round(amount)))
}

// FormatCode renders like Format but with the plain ASCII currency code
// instead of the symbol. Used by the print backend, where the naira glyph
// is not in the base font set.
func FormatCode(amount float64, c Currency) string {
	return string(c) + " " + printerFor(c).Sprintf("%d", int64(math.Round(amount)))
}
