package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupee = "₹"

var printer = message.NewPrinter(language.English)

// FormatINR renders a whole-rupee amount with thousands separators: ₹1,234,567.
func FormatINR(d decimal.Decimal) string {
	return rupee + printer.Sprintf("%d", d.Round(0).IntPart())
}

// FormatRatio renders a per-km rupee amount with two decimals.
func FormatRatio(d decimal.Decimal) string {
	return rupee + d.StringFixed(2)
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Label turns a column name into a display label: Vehicle_Maintenance -> Vehicle Maintenance.
func Label(column string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(column, "_", " "))
}
