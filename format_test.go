package ror

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		decimal  float64
		decimals int
		want     string
	}{
		{0.1, 2, "10.00%"},
		{0.1, 0, "10%"},
		{0.08447177, 2, "8.45%"},
		{0.08447177, 4, "8.4472%"},
		{-0.25, 1, "-25.0%"},
		{0, 2, "0.00%"},
		{1.5, -1, "150%"},
	}
	for _, tt := range tests {
		if got := FormatPercentageN(tt.decimal, tt.decimals); got != tt.want {
			t.Errorf("FormatPercentageN(%v, %d) = %q, want %q", tt.decimal, tt.decimals, got, tt.want)
		}
	}
	if got, want := FormatPercentage(0.1), "10.00%"; got != want {
		t.Errorf("FormatPercentage(0.1) = %q, want %q", got, want)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.5, "USD", "$1,234.50"},
		{1234.5, "", "$1,234.50"},
		{0, "USD", "$0.00"},
		{0.005, "USD", "$0.01"},
		{999999999.999, "USD", "$1,000,000,000.00"},
		{-5000, "USD", "-$5,000.00"},
		{10, "EUR", "€10.00"},
		{1000, "JPY", "¥1,000.00"},
		{1234.5, "XYZ", "1,234.50 XYZ"},
		{math.Inf(1), "USD", "∞"},
		{1e17, "USD", "$100,000,000,000,000,000.00"},
		{1e20, "USD", "$100,000,000,000,000,000,000.00"},
		{-1e20, "EUR", "-€100,000,000,000,000,000,000.00"},
		{123, "USD", "$123.00"},
		{-0.001, "USD", "-$0.00"},
		{-0.0, "USD", "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatCurrencyLargeFutureValue(t *testing.T) {
	// 1e9 doubled every year for 100 years is about 1.27e39.
	got := FormatCurrency(CalculateFutureValue(1e9, 1, 100), "USD")
	if !strings.HasPrefix(got, "$1,267,650,600,228,22") || !strings.HasSuffix(got, ".00") {
		t.Errorf("FormatCurrency(1e9 * 2^100) = %q", got)
	}
	if n := strings.Count(got, ","); n != 13 {
		t.Errorf("FormatCurrency(1e9 * 2^100) = %q has %d separators, want 13", got, n)
	}
}

func TestPercent(t *testing.T) {
	p := PercentOf(0.123456)
	if !p.Equal(12.3456) {
		t.Errorf("PercentOf(0.123456) = %v, want 12.3456", float64(p))
	}
	if got, want := p.String(), "12.35%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := p.SignedString(), "+12.3%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Percent(-4.26).SignedString(), "-4.3%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Percent(0).SignedString(), "+0.0%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got := p.Rate(); math.Abs(got-0.123456) > 1e-12 {
		t.Errorf("Rate() = %v, want 0.123456", got)
	}
}

func ExampleFormatCurrency() {
	fmt.Println(FormatCurrency(15000, "USD"))
	fmt.Println(FormatCurrency(-42.125, ""))
	// Output:
	// $15,000.00
	// -$42.13
}

func ExampleFormatPercentage() {
	rate, _ := CalculateRoR(10000, 15000, 5)
	fmt.Println(FormatPercentage(rate))
	fmt.Println(FormatPercentageN(rate, 0))
	// Output:
	// 8.45%
	// 8%
}
