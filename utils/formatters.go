package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a whole-rupee amount with Indian digit grouping,
// e.g. ₹1,999. Store amounts are integers; no fraction digits are shown.
func FormatINR(amount int) string {
	return inr.Sprintf("₹%v", number.Decimal(amount))
}
