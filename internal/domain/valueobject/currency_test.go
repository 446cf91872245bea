package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "thousands with one decimal", amount: decimal.NewFromFloat(1234.5), expected: "R$ 1.234,50"},
		{name: "zero", amount: decimal.Zero, expected: "R$ 0,00"},
		{name: "negative", amount: decimal.NewFromInt(-150), expected: "-R$ 150,00"},
		{name: "millions", amount: decimal.RequireFromString("1234567.89"), expected: "R$ 1.234.567,89"},
		{name: "below one", amount: decimal.RequireFromString("0.5"), expected: "R$ 0,50"},
		{name: "exact hundreds", amount: decimal.NewFromInt(800), expected: "R$ 800,00"},
		{name: "rounds half up", amount: decimal.RequireFromString("10.005"), expected: "R$ 10,01"},
		{name: "rounds half away from zero for negatives", amount: decimal.RequireFromString("-10.005"), expected: "-R$ 10,01"},
		{name: "rounds down", amount: decimal.RequireFromString("10.004"), expected: "R$ 10,00"},
		{name: "tiny negative rounds to zero", amount: decimal.RequireFromString("-0.001"), expected: "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplay(tt.amount))
		})
	}
}

func TestParseTypedInput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "formatted currency", raw: "R$ 1.234,50", expected: "1234.5"},
		{name: "plain integer", raw: "150", expected: "150"},
		{name: "comma decimal", raw: "12,34", expected: "12.34"},
		{name: "negative display", raw: "-R$ 150,00", expected: "-150"},
		{name: "empty", raw: "", expected: "0"},
		{name: "letters only", raw: "abc", expected: "0"},
		{name: "lone hyphen", raw: "-", expected: "0"},
		{name: "double hyphen", raw: "--5", expected: "0"},
		{name: "second comma stops parsing", raw: "1,2,3", expected: "1.2"},
		{name: "inner hyphen stops parsing", raw: "12-3", expected: "12"},
		{name: "leading comma", raw: ",75", expected: "0.75"},
		{name: "trailing comma", raw: "42,", expected: "42"},
		{name: "dot is a thousands separator", raw: "1.000", expected: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTypedInput(tt.raw)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseTypedInput_RoundTripsFormatDisplay(t *testing.T) {
	values := []string{"0", "0.01", "1234.5", "-150", "99999.99", "-1234567.8"}

	for _, v := range values {
		amount := decimal.RequireFromString(v)
		got := ParseTypedInput(FormatDisplay(amount))
		assert.True(t, amount.Equal(got), "round trip of %s gave %s", v, got)
	}
}

func TestFormatAsUserTypes(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "150", expected: "1,50"},
		{raw: "", expected: ""},
		{raw: "abc", expected: ""},
		{raw: "5", expected: "0,05"},
		{raw: "123456", expected: "1.234,56"},
		{raw: "1,50", expected: "1,50"},
		{raw: "R$ 12,345", expected: "123,45"},
		{raw: "0001", expected: "0,01"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAsUserTypes(tt.raw))
		})
	}
}

func TestBalanceCategory(t *testing.T) {
	assert.Equal(t, BalancePositive, BalanceCategory(decimal.NewFromInt(1)))
	assert.Equal(t, BalanceNegative, BalanceCategory(decimal.NewFromFloat(-0.01)))
	assert.Equal(t, BalanceNeutral, BalanceCategory(decimal.Zero))
}

func TestCodec_CustomLocale(t *testing.T) {
	usd := Codec{Symbol: "US$", GroupSeparator: ",", DecimalSeparator: '.'}

	assert.Equal(t, "US$ 1,234.50", usd.FormatDisplay(decimal.NewFromFloat(1234.5)))
	assert.True(t, decimal.NewFromFloat(1234.5).Equal(usd.ParseTypedInput("US$ 1234.50")))
}
