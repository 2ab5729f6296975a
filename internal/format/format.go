// Package format renders raw metric values for display. The aggregation and
// reporting code returns plain numbers; formatting is applied at the
// presentation boundary and inside report cells, which are strings.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The dashboard displays amounts in Argentine convention: "." groups
// thousands, "," separates decimals.
var printer = message.NewPrinter(language.MustParse("es-AR"))

// Currency renders n as a currency amount with zero decimal places.
func Currency(n float64) string {
	return printer.Sprintf("$ %v", number.Decimal(n, number.MaxFractionDigits(0)))
}

// Number renders n as a grouped decimal number.
func Number(n float64) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// Percentage renders a whole-number percentage (12.3 means 12.3%) with one
// decimal place and an explicit sign, so a flat metric shows as "+0.0%".
func Percentage(n float64) string {
	return fmt.Sprintf("%+.1f%%", n)
}
