// Package format turns numeric fund figures into display strings.
package format

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the currency all catalog values are expressed in.
const CurrencyCode = money.USD

var currencyFormatter = wholeUnitFormatter(CurrencyCode)

// wholeUnitFormatter builds a formatter for the currency without fraction digits.
func wholeUnitFormatter(code string) *money.Formatter {
	cur := money.GetCurrency(code)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}

// Currency formats a value in whole currency units, rounding half away from zero.
//
//	Currency(11250)   // "$11,250"
//	Currency(-1000.4) // "-$1,000"
func Currency(value float64) string {
	units := decimal.NewFromFloat(value).Round(0).IntPart()
	return currencyFormatter.Format(units)
}

// Percentage formats a value with two decimals and an explicit sign.
// Zero and positive values get a leading "+".
//
//	Percentage(3.2)  // "+3.20%"
//	Percentage(-1.2) // "-1.20%"
//	Percentage(0)    // "+0.00%"
func Percentage(value float64) string {
	text := decimal.NewFromFloat(value).StringFixed(2)
	switch {
	case value >= 0:
		return "+" + text + "%"
	case !strings.HasPrefix(text, "-"):
		// negative values that round to zero keep their sign
		return "-" + text + "%"
	default:
		return text + "%"
	}
}

// AxisPercent formats a chart axis value with one decimal.
// Negative values that round to zero keep their sign ("-0.0%").
func AxisPercent(value float64) string {
	text := decimal.NewFromFloat(value).StringFixed(1)
	if value < 0 && !strings.HasPrefix(text, "-") {
		return "-" + text + "%"
	}
	return text + "%"
}

// ExpenseRatio formats an annual expense ratio such as "0.75%".
func ExpenseRatio(value float64) string {
	return decimal.NewFromFloat(value).String() + "%"
}

// AUM formats assets under management given in millions, such as "$2450M".
func AUM(millions float64) string {
	return money.GetCurrency(CurrencyCode).Grapheme + decimal.NewFromFloat(millions).String() + "M"
}
