package ror

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is given.
const DefaultCurrency = "USD"

// currencyFraction is the number of fractional digits always displayed.
const currencyFraction = 2

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money, an empty currency means DefaultCurrency.
func M(value float64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

func (m Money) Currency() string         { return m.cur }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the en-US display of the value: currency symbol first, ","
// thousands separator, "." decimal point and exactly two fractional digits.
// Amounts keep all their digits, however large, and a negative amount that
// rounds to zero keeps its sign: "-$0.00".
//
// Codes unknown to go-money are printed after the amount: "1,234.50 XYZ".
func (m Money) String() string {
	amount := groupThousands(m.value.Abs().StringFixed(currencyFraction))

	s := amount + " " + m.cur
	if cur := money.GetCurrency(m.cur); cur != nil {
		s = cur.Grapheme + amount
	}
	if m.value.IsNegative() {
		return "-" + s
	}
	return s
}

// groupThousands inserts "," every three digits of the integer part of a
// non negative decimal string.
func groupThousands(digits string) string {
	integer, fraction, _ := strings.Cut(digits, ".")
	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}

// SignedString is String with an explicit "+" on positive values.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// FormatCurrency renders amount in currency (DefaultCurrency when empty) with
// exactly two fractional digits: FormatCurrency(1234.5, "USD") is "$1,234.50".
// Non finite amounts have no monetary display and are printed as-is.
func FormatCurrency(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimalLessString(amount)
	}
	return M(amount, currency).String()
}

func decimalLessString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	default:
		return "-∞"
	}
}
