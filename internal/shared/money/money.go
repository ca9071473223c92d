// Package money formats amounts held in a currency's minor units for display.
package money

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount in minor units, e.g. 123456 USD -> "$1,234.56"
// and 1000 JPY -> "¥1,000". The number of minor digits comes from the
// currency's standard rounding. Single-rune symbols are attached to the
// number; codes and multi-letter symbols keep a space.
func FormatPrice(minor int64, code string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return sign + strings.ToUpper(code) + " " + printer.Sprintf("%d", minor/100) + fmt.Sprintf(".%02d", minor%100)
	}

	scale, _ := currency.Standard.Rounding(unit)
	amount := float64(minor) / math.Pow10(scale)

	sym := printer.Sprint(currency.Symbol(unit))
	s := printer.Sprint(currency.Symbol(unit.Amount(amount)))
	num := strings.TrimPrefix(s, sym+" ")
	if utf8.RuneCountInString(sym) == 1 {
		return sign + sym + num
	}
	return sign + sym + " " + num
}

// FormatNumber renders an integer with thousands separators, e.g. 12000 -> "12,000".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}
