package rbe

import (
	"github.com/rudof-project/rudof-sub005/card"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// mkAnd normalizes And construction: Empty is the identity, and a Fail
// operand propagates (the first one encountered) rather than building an
// And around it, so dead branches are pruned eagerly instead of surviving
// until nullability is checked (§4.3).
func mkAnd(left, right Expr) Expr {
	if f, ok := left.(Fail); ok {
		return f
	}
	if f, ok := right.(Fail); ok {
		return f
	}
	if _, ok := left.(Empty); ok {
		return right
	}
	if _, ok := right.(Empty); ok {
		return left
	}
	return And{Left: left, Right: right}
}

// mkOr normalizes Or construction: Fail is the identity for Or (a failed
// alternative simply drops out of the choice), uniformly in both operand
// positions (§10.1 resolves the original's asymmetric mkOr(Fail, e) case
// this way).
func mkOr(left, right Expr) Expr {
	if _, ok := left.(Fail); ok {
		return right
	}
	if _, ok := right.(Fail); ok {
		return left
	}
	return Or{Left: left, Right: right}
}

// mkRangeSymbol builds a Symbol on predicate with the given cardinality,
// failing with ReasonRangeBoundsBad when min exceeds max (§4.3:
// "mkRangeSymbol(x, min, max) fails when bigger(min, max)").
func mkRangeSymbol(predicate rdf.Term, min int, max card.Max, cond Cond) Expr {
	if card.Bigger(min, max) {
		return Fail{Reason: ReasonRangeBoundsBad}
	}
	return Symbol{Predicate: predicate, Min: min, Max: max, Cond: cond}
}

// NewSymbol constructs a Symbol expression, going through the same
// min/max validation mkRangeSymbol applies during derivation. It is the
// entry point schema compilation (C5) uses to lower a TripleConstraint's
// cardinality into an rbe.Expr.
func NewSymbol(predicate rdf.Term, min int, max card.Max, cond Cond) Expr {
	return mkRangeSymbol(predicate, min, max, cond)
}
