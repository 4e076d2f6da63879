// Package card implements the cardinality arithmetic used by the regular
// bag expression matcher (C2): bounded or unbounded upper bounds on how
// many times a symbol may occur, and the few operations the derivative
// rules need on them.
package card

import "fmt"

// Max is the upper bound of a cardinality range: either a concrete
// non-negative integer or Unbounded (conceptually +∞).
//
// The zero value is IntMax(0), the empty-language bound — callers that
// want Unbounded must ask for it explicitly via the Unbounded value.
type Max struct {
	n         int
	unbounded bool
}

// Unbounded is the cardinality upper bound with no limit.
var Unbounded = Max{unbounded: true}

// IntMax constructs a concrete upper bound. Negative values are clamped to 0.
func IntMax(n int) Max {
	if n < 0 {
		n = 0
	}
	return Max{n: n}
}

// IsUnbounded reports whether m has no upper bound.
func (m Max) IsUnbounded() bool {
	return m.unbounded
}

// Int returns the concrete bound and true, or (0, false) if m is Unbounded.
func (m Max) Int() (int, bool) {
	if m.unbounded {
		return 0, false
	}
	return m.n, true
}

// String renders the bound as "n" or "*".
func (m Max) String() string {
	if m.unbounded {
		return "*"
	}
	return fmt.Sprintf("%d", m.n)
}

// MinusOne implements Max::minus_one: IntMax(n) becomes IntMax(max(0,n-1));
// Unbounded is unchanged (§4.2).
func (m Max) MinusOne() Max {
	if m.unbounded {
		return m
	}
	if m.n == 0 {
		return m
	}
	return IntMax(m.n - 1)
}

// MinusN subtracts n from the bound, floored at zero; Unbounded is
// unchanged. Used by the Symbol derivative rule when a batch of identical
// arcs is consumed at once.
func (m Max) MinusN(n int) Max {
	if m.unbounded {
		return m
	}
	if n >= m.n {
		return IntMax(0)
	}
	return IntMax(m.n - n)
}

// Bigger reports whether min exceeds max, with Unbounded treated as +∞
// (§4.2). A Symbol whose min is bigger than its max can never be built by
// mkRangeSymbol.
func Bigger(min int, max Max) bool {
	if max.unbounded {
		return false
	}
	return min > max.n
}

// Contains reports whether n falls within the inclusive range [min, max]
// (§4.2), with Unbounded treated as +∞.
func Contains(n, min int, max Max) bool {
	if n < min {
		return false
	}
	if max.unbounded {
		return true
	}
	return n <= max.n
}

// IsZero reports whether max is the concrete bound IntMax(0).
func (m Max) IsZero() bool {
	return !m.unbounded && m.n == 0
}

// Equal reports whether two bounds denote the same value.
func (m Max) Equal(other Max) bool {
	return m.unbounded == other.unbounded && m.n == other.n
}

// Min is a cardinality lower bound: always a non-negative integer.
type Min int

// NonNegative clamps a possibly-negative integer to a valid Min.
func NonNegative(n int) Min {
	if n < 0 {
		return 0
	}
	return Min(n)
}
