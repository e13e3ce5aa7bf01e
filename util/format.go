package util

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount with its narrow currency symbol,
// e.g. FormatCurrency(1234.5, "USD") -> "$ 1,234.50". Unknown codes
// fall back to a plain formatted number.
func FormatCurrency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return FormatNumber(amount, 2)
	}
	return printer.Sprintf("%v %s", currency.NarrowSymbol(unit), FormatNumber(amount, 2))
}

// FormatNumber renders a number with a fixed count of fraction digits
// and locale grouping separators.
func FormatNumber(value float64, decimals int) string {
	return printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}
