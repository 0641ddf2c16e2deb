package ror

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultPercentDecimals is the number of fractional digits of FormatPercentage.
const DefaultPercentDecimals = 2

// Percent is a rate expressed in percent: 12.5 means 12.5%.
type Percent float64

// PercentOf converts a decimal fraction rate (0.10) into a Percent (10).
func PercentOf(rate float64) Percent { return Percent(rate * 100) }

// Rate converts back to a decimal fraction.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString prints a one decimal percent with an explicit "+" on non
// negative values, as shown on the result gauge.
func (p Percent) SignedString() string {
	if p >= 0 {
		return "+" + p.Fixed(1)
	}
	return p.Fixed(1)
}

// Abs is the magnitude of the percent.
func (p Percent) Abs() Percent { return Percent(math.Abs(float64(p))) }

// Fixed prints the percent with the given number of fractional digits.
func (p Percent) Fixed(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(float64(p), 'f', decimals, 64) + "%"
}

// FormatPercentage renders a decimal fraction as a percent with
// DefaultPercentDecimals digits: 0.1 is "10.00%".
func FormatPercentage(decimal float64) string {
	return FormatPercentageN(decimal, DefaultPercentDecimals)
}

// FormatPercentageN renders a decimal fraction as a percent with the given
// number of fractional digits: FormatPercentageN(0.1, 0) is "10%".
func FormatPercentageN(decimal float64, decimals int) string {
	return PercentOf(decimal).Fixed(decimals)
}
