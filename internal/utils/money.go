package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// RoundMoney rounds to cents using round-half-to-even.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a two-decimal amount with thousand separators. The
// digits come from the exact decimal, never from a float.
func FormatAmount(amount decimal.Decimal) string {
	fixed := RoundMoney(amount).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(whole) + "." + cents
}

func groupThousands(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return amountPrinter.Sprintf("%d", n)
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatMoney prefixes FormatAmount with the currency symbol, falling back
// to the ISO code for currencies without a known symbol.
func FormatMoney(code string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}
	return sign + symbol + FormatAmount(amount)
}

// FormatPercent renders a share such as 0.25 as "25%".
func FormatPercent(share decimal.Decimal) string {
	return share.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
