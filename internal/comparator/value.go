package comparator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	KindNumber Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a classified command-line argument. It is either a Number or a Text.
type Value interface {
	Kind() Kind
	String() string

	// value seals the interface to the variants declared in this package
	value()
}

// Number is an argument that parsed as a decimal floating-point value
type Number float64

func (Number) Kind() Kind { return KindNumber }

// String returns the canonical decimal rendering of the number
func (n Number) String() string { return FormatNumber(float64(n)) }

func (Number) value() {}

// Text is an argument that did not parse as a number, kept exactly as given
type Text string

func (Text) Kind() Kind { return KindText }

func (t Text) String() string { return string(t) }

func (Text) value() {}

// Classify turns raw text into a Number when it is a decimal float literal
// and into a Text otherwise. It never fails.
func Classify(s string) Value {
	if !isDecimalForm(s) {
		return Text(s)
	}
	if isSignedNaN(s) {
		return Number(math.NaN())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Well-formed literals beyond float64 range still count as numbers (±Inf)
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Number(f)
		}
		return Text(s)
	}
	return Number(f)
}

// isDecimalForm rejects the Go-literal extensions ParseFloat accepts on top of
// plain decimal syntax: hexadecimal mantissas and underscore digit separators.
func isDecimalForm(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}
	return true
}

// isSignedNaN reports whether s is "nan" in any case behind a single sign.
// ParseFloat only accepts a sign on infinities.
func isSignedNaN(s string) bool {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return false
	}
	return strings.EqualFold(s[1:], "nan")
}

// FormatNumber renders f with the shortest digits that round-trip, without
// exponent notation and without a trailing ".0" for integral values.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
