// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Balance classifies the sign of an amount for display.
type Balance string

const (
	BalancePositive Balance = "positive"
	BalanceNegative Balance = "negative"
	BalanceNeutral  Balance = "neutral"
)

// Codec converts amounts to and from the textual forms of a single locale.
type Codec struct {
	Symbol           string
	GroupSeparator   string
	DecimalSeparator byte
}

// BRL is the Brazilian real in pt-BR notation: "R$ 1.234,50".
var BRL = Codec{
	Symbol:           "R$",
	GroupSeparator:   ".",
	DecimalSeparator: ',',
}

// FormatDisplay renders amount as currency text with two decimal places.
// Rounding is half away from zero. Negative values carry a leading minus: "-R$ 150,00".
func (c Codec) FormatDisplay(amount decimal.Decimal) string {
	number, negative := c.formatNumber(amount)
	if negative {
		return "-" + c.Symbol + " " + number
	}
	return c.Symbol + " " + number
}

// ParseTypedInput reads a human-entered amount. Every character other than a digit,
// the decimal separator or '-' is discarded, and the first decimal separator is read
// as the decimal point. The longest numeric prefix of what remains is parsed.
// Input with no numeric prefix yields zero.
func (c Codec) ParseTypedInput(raw string) decimal.Decimal {
	var b strings.Builder
	separatorSeen := false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch >= '0' && ch <= '9', ch == '-':
			b.WriteByte(ch)
		case ch == c.DecimalSeparator:
			if !separatorSeen {
				b.WriteByte('.')
				separatorSeen = true
			} else {
				b.WriteByte(ch)
			}
		}
	}
	return parseNumericPrefix(b.String())
}

// FormatAsUserTypes reads the digits of raw as cents and renders them without the
// currency symbol, so "150" becomes "1,50". No digits yields an empty string.
func (c Codec) FormatAsUserTypes(raw string) string {
	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits.WriteByte(raw[i])
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	cents, err := decimal.NewFromString(digits.String())
	if err != nil {
		return ""
	}
	number, _ := c.formatNumber(cents.Shift(-2))
	return number
}

// formatNumber renders |amount| rounded to two places with locale separators.
// A value that rounds to zero is never reported as negative.
func (c Codec) formatNumber(amount decimal.Decimal) (string, bool) {
	rounded := amount.Round(2)
	negative := rounded.IsNegative()
	fixed := rounded.Abs().StringFixed(2)

	intPart, fracPart := fixed, ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart, fracPart = fixed[:dot], fixed[dot+1:]
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(c.GroupSeparator)
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(c.DecimalSeparator)
	b.WriteString(fracPart)
	return b.String(), negative
}

// parseNumericPrefix parses the longest prefix of s shaped like [-]digits[.digits].
func parseNumericPrefix(s string) decimal.Decimal {
	i := 0
	negative := false
	if i < len(s) && s[i] == '-' {
		negative = true
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intDigits := s[intStart:i]

	fracDigits := ""
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		fracDigits = s[fracStart:j]
	}

	if intDigits == "" && fracDigits == "" {
		return decimal.Zero
	}
	if intDigits == "" {
		intDigits = "0"
	}
	number := intDigits
	if fracDigits != "" {
		number += "." + fracDigits
	}
	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return value.Neg()
	}
	return value
}

// FormatDisplay renders amount in BRL.
func FormatDisplay(amount decimal.Decimal) string {
	return BRL.FormatDisplay(amount)
}

// ParseTypedInput reads a pt-BR amount typed by a user.
func ParseTypedInput(raw string) decimal.Decimal {
	return BRL.ParseTypedInput(raw)
}

// FormatAsUserTypes formats a digit stream as BRL cents without the symbol.
func FormatAsUserTypes(raw string) string {
	return BRL.FormatAsUserTypes(raw)
}

// BalanceCategory classifies amount as positive, negative or neutral.
func BalanceCategory(amount decimal.Decimal) Balance {
	switch amount.Sign() {
	case 1:
		return BalancePositive
	case -1:
		return BalanceNegative
	default:
		return BalanceNeutral
	}
}
