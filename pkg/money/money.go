package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders grouped decimals ("1,500"). The reference UI used comma
// grouping for both Spanish and English content, so the printer is fixed.
var printer = message.NewPrinter(language.English)

// Safe coerces a possibly missing or malformed price to a usable number.
// nil, NaN and Inf all degrade to 0 instead of propagating an error.
func Safe(v *float64) float64 {
	if v == nil {
		return 0
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// Format renders a price with thousands grouping. Malformed input renders
// as "0", so a broken price never breaks the view that shows it.
func Format(v *float64) string {
	return FormatValue(Safe(v))
}

// FormatValue renders an already-validated amount with thousands grouping.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
