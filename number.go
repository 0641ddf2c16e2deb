package ror

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an optional real number read from a text field.
//
// The zero value is None: a field that is empty or could not be parsed.
type Number struct {
	value float64
	valid bool
}

// Some returns a present Number.
func Some(v float64) Number { return Number{value: v, valid: true} }

// None returns a missing Number.
func None() Number { return Number{} }

// Valid reports whether the number is present.
func (n Number) Valid() bool { return n.valid }

// Float returns the value, 0 when missing.
func (n Number) Float() float64 { return n.value }

func (n Number) String() string {
	if !n.valid {
		return ""
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

// MarshalText renders a missing number as an empty string.
func (n Number) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText reads the output of MarshalText, or form field text; it never fails.
func (n *Number) UnmarshalText(text []byte) error {
	*n = parseText(string(text))
	return nil
}

// MarshalJSON writes a JSON number, or null when missing.
// Infinities and NaN are written as the strings "+Inf", "-Inf" and "NaN".
func (n Number) MarshalJSON() ([]byte, error) {
	switch {
	case !n.valid:
		return []byte("null"), nil
	case math.IsNaN(n.value) || math.IsInf(n.value, 0):
		return json.Marshal(strconv.FormatFloat(n.value, 'g', -1, 64))
	default:
		return json.Marshal(n.value)
	}
}

// UnmarshalJSON accepts a JSON number, a string or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*n = NumberOf(v)
	return nil
}

// Sanitize keeps only the digits and the decimal point of text.
func Sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumber sanitizes text and reads its longest leading "digits[.digits]"
// prefix. Anything after a second decimal point is ignored, so "1.2.3" is 1.2.
func ParseNumber(text string) Number {
	s := Sanitize(text)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	if s == "" || s == "." {
		return None()
	}
	// Only digits and one dot are left, so the sole possible error is an
	// overflow, for which ParseFloat already returns +Inf.
	v, _ := strconv.ParseFloat(s, 64)
	return Some(v)
}

// parseText reads a plain float, sign and exponent included, and falls back
// to ParseNumber for text typed like a form field ("$10,000").
func parseText(text string) Number {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Some(v)
	}
	return ParseNumber(text)
}

// NumberOf converts a decoded JSON or YAML scalar into a Number.
// Numbers are taken as is, strings are read as a plain float ("-0.05") or
// else like a form field ("$1,500"), anything else is None.
func NumberOf(v any) Number {
	switch x := v.(type) {
	case nil:
		return None()
	case float64:
		return Some(x)
	case float32:
		return Some(float64(x))
	case int:
		return Some(float64(x))
	case int64:
		return Some(float64(x))
	case string:
		return parseText(x)
	case fmt.Stringer:
		return parseText(x.String())
	default:
		return None()
	}
}
