package rbe

import (
	"github.com/rudof-project/rudof-sub005/card"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// Deriv computes the derivative of e with respect to one (predicate,
// object) arc: the expression that must match the remaining arcs once this
// one has been consumed. It is the single dispatch point every variant's
// derivative rule goes through, mirroring the teacher's one-function-per-
// AST-walk style.
func Deriv(e Expr, predicate, object rdf.Term) Expr {
	switch n := e.(type) {
	case Empty:
		return Fail{Reason: ReasonUnexpectedEmpty, Detail: predicate.String()}

	case Fail:
		return n

	case Symbol:
		return derivSymbol(n, predicate, object)

	case And:
		return derivAnd(n, predicate, object)

	case Or:
		return derivOr(n, predicate, object)

	case Star:
		return derivStar(n, predicate, object)

	case Plus:
		return derivPlus(n, predicate, object)

	case Repeat:
		return derivRepeat(n, predicate, object)

	default:
		return Fail{Reason: ReasonUnexpectedSymbol, Detail: "unknown rbe.Expr variant"}
	}
}

// derivSymbol matches the arc against the symbol's predicate and
// condition, then steps the cardinality down by one, folding straight to
// Empty or Fail at the boundaries instead of carrying a useless Repeat(0,0)
// or Repeat(_, maxed-out) around.
func derivSymbol(s Symbol, predicate, object rdf.Term) Expr {
	if s.Predicate != predicate {
		return Fail{Reason: ReasonUnexpectedSymbol, Detail: predicate.String()}
	}
	if err := s.Cond.Check(predicate, object); err != nil {
		return Fail{Reason: ReasonCondFailed, Detail: err.Error()}
	}
	if s.Max.IsZero() {
		return Fail{Reason: ReasonMaxCardZero}
	}

	nextMin := 0
	if s.Min > 0 {
		nextMin = s.Min - 1
	}
	nextMax := s.Max.MinusOne()

	if nextMin == 0 && nextMax.IsZero() {
		return Empty{}
	}
	return Symbol{Predicate: s.Predicate, Min: nextMin, Max: nextMax, Cond: s.Cond}
}

// derivAnd applies the order-independence rule: since And matches an
// arbitrary interleaving of its two sub-bags, the arc may belong to either
// side, so the derivative offers both possibilities as an Or (§4: "mkOr(
// mkAnd(deriv(e1), e2), mkAnd(e1, deriv(e2)))").
func derivAnd(a And, predicate, object rdf.Term) Expr {
	left := mkAnd(Deriv(a.Left, predicate, object), a.Right)
	right := mkAnd(a.Left, Deriv(a.Right, predicate, object))
	return mkOr(left, right)
}

// derivOr derives whichever branch(es) the arc could belong to.
func derivOr(o Or, predicate, object rdf.Term) Expr {
	return mkOr(Deriv(o.Left, predicate, object), Deriv(o.Right, predicate, object))
}

// derivStar unrolls one more repetition: Star(e) derives to
// And(deriv(e), Star(e)), since after consuming one arc of e the rest of
// the bag can still restart e arbitrarily many more times.
func derivStar(s Star, predicate, object rdf.Term) Expr {
	return mkAnd(Deriv(s.Sub, predicate, object), s)
}

// derivPlus behaves like Star once the first repetition starts, so its
// derivative is the same And(deriv(e), Star(e)) shape; Plus only differs
// from Star in its own (not its derivative's) nullability.
func derivPlus(p Plus, predicate, object rdf.Term) Expr {
	return mkAnd(Deriv(p.Sub, predicate, object), Star{Sub: p.Sub})
}

// derivRepeat steps the repetition's own cardinality down by one,
// combined with one more unrolling of Sub, following the same pattern as
// derivSymbol. The degenerate Repeat(e, 0, 0) bound is handled by
// mkRangeSymbol / mkRepeat at construction time, never reaching here;
// Deriv still guards it defensively per §4's "if deriv e is nullable,
// fail (CardinalityZeroZeroDeriv), else Empty" resolution.
func derivRepeat(r Repeat, predicate, object rdf.Term) Expr {
	if r.Max.IsZero() {
		d := Deriv(r.Sub, predicate, object)
		if d.Nullable() {
			return Fail{Reason: ReasonCardZeroZeroDrv}
		}
		return Empty{}
	}

	nextMin := 0
	if r.Min > 0 {
		nextMin = r.Min - 1
	}
	nextMax := r.Max.MinusOne()
	rest := mkRepeat(r.Sub, nextMin, nextMax)

	return mkAnd(Deriv(r.Sub, predicate, object), rest)
}

// mkRepeat normalizes Repeat construction: a (0,0) bound collapses to
// Empty (matches nothing further) rather than surviving as a Repeat node.
func mkRepeat(sub Expr, min int, max card.Max) Expr {
	if min == 0 && max.IsZero() {
		return Empty{}
	}
	return Repeat{Sub: sub, Min: min, Max: max}
}
