package comparator

import (
	"context"
	"fmt"
	"log/slog"
)

// Comparison operators that can appear in a result
const (
	OpEqual    = "=="
	OpNotEqual = "!="
	OpGreater  = ">"
	OpLess     = "<"
)

// Comparator compares classified values and logs how each pair was dispatched
type Comparator struct {
	logger *slog.Logger
}

// New creates a new comparator
func New(logger *slog.Logger) *Comparator {
	return &Comparator{
		logger: logger,
	}
}

// CompareArgs classifies both raw arguments and compares them
func (c *Comparator) CompareArgs(ctx context.Context, a, b string) string {
	left, right := Classify(a), Classify(b)

	c.logger.DebugContext(ctx, "classified arguments",
		"left", a,
		"left_kind", left.Kind(),
		"right", b,
		"right_kind", right.Kind())

	return c.Compare(ctx, left, right)
}

// Compare compares two values and logs the result
func (c *Comparator) Compare(ctx context.Context, a, b Value) string {
	result := Compare(a, b)

	c.logger.DebugContext(ctx, "compared values",
		"left_kind", a.Kind(),
		"right_kind", b.Kind(),
		"result", result)

	return result
}

// Compare formats the comparison of a and b as "<left> <op> <right>".
// Two numbers are compared numerically. Any pair involving text is compared
// for equality, with a number operand rendered by FormatNumber first.
func Compare(a, b Value) string {
	switch a := a.(type) {
	case Number:
		switch b := b.(type) {
		case Number:
			return CompareNumbers(float64(a), float64(b))
		case Text:
			return CompareTexts(a.String(), string(b))
		}
	case Text:
		switch b := b.(type) {
		case Number:
			return CompareTexts(string(a), b.String())
		case Text:
			return CompareTexts(string(a), string(b))
		}
	}
	// Unreachable: Value is sealed to Number and Text
	panic(fmt.Sprintf("comparator: unsupported value pair %T, %T", a, b))
}

// CompareNumbers compares a and b using IEEE-754 operators. NaN is not
// special-cased, so any comparison involving NaN reports "<".
func CompareNumbers(a, b float64) string {
	op := OpLess
	if a == b {
		op = OpEqual
	} else if a > b {
		op = OpGreater
	}
	return format(FormatNumber(a), op, FormatNumber(b))
}

// CompareTexts reports byte-exact equality of a and b. Text is never ordered.
func CompareTexts(a, b string) string {
	op := OpNotEqual
	if a == b {
		op = OpEqual
	}
	return format(a, op, b)
}

func format(left, op, right string) string {
	return left + " " + op + " " + right
}
