package rbe

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudof-project/rudof-sub005/rdf"
)

// DefaultMaxSteps is the step bound MatchBag uses when its maxSteps argument
// is <= 0. The bound limits the derivative steps taken before giving up, guarding against pathological expressions (deeply nested
// Star/Plus/Repeat combinations) that could otherwise derive forever on an
// adversarial bag.
const DefaultMaxSteps = 10000

// ErrMaxStepsExceeded is returned when a match is abandoned after
// exceeding the step budget; the validation driver (C7) maps this to
// diag.E_MAX_STEPS_EXCEEDED.
var ErrMaxStepsExceeded = errors.New("rbe: exceeded maximum derivative steps")

// MatchResult is the outcome of folding an expression's derivative over a
// bag of arcs.
type MatchResult struct {
	// Matched is true iff the final derived expression is nullable.
	Matched bool
	// Pending records every arc that was offered to the expression, in
	// the order it was consumed.
	Pending Pending
	// Final is the expression reached after folding every arc.
	Final Expr
	// Steps is the number of derivative steps actually taken.
	Steps int
}

// MatchBag folds Deriv over items in order, then reports whether the
// resulting expression is nullable. maxSteps <= 0 selects DefaultMaxSteps.
// The fold order matters only for diagnostics (Pending records it); And's
// derivative rule makes the final nullability verdict independent of the
// order items are offered in (§4).
func MatchBag(ctx context.Context, e Expr, items []PendingItem, maxSteps int) (MatchResult, error) {
	if ctx == nil {
		return MatchResult{}, fmt.Errorf("rbe: nil context")
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	cur := e
	pending := Pending{}
	for i, item := range items {
		if i >= maxSteps {
			return MatchResult{Pending: pending, Final: cur, Steps: i},
				fmt.Errorf("%w: limit %d", ErrMaxStepsExceeded, maxSteps)
		}
		select {
		case <-ctx.Done():
			return MatchResult{Pending: pending, Final: cur, Steps: i}, ctx.Err()
		default:
		}

		cur = Deriv(cur, item.Predicate, item.Object)
		pending = pending.Append(item)

		if _, isFail := cur.(Fail); isFail {
			return MatchResult{Matched: false, Pending: pending, Final: cur, Steps: i + 1}, nil
		}
	}

	return MatchResult{
		Matched: cur.Nullable(),
		Pending: pending,
		Final:   cur,
		Steps:   len(items),
	}, nil
}

// MatchesBag reports only whether e matches items, discarding the rest of
// the MatchResult; a convenience wrapper for callers that don't need the
// pending trail.
func MatchesBag(ctx context.Context, e Expr, items []PendingItem, maxSteps int) (bool, error) {
	res, err := MatchBag(ctx, e, items, maxSteps)
	if err != nil {
		return false, err
	}
	return res.Matched, nil
}

// arcsFromNeighborhood adapts an rdf.Neighborhood's arcs into the
// PendingItem shape MatchBag consumes, the usual way a validator feeds a
// node's outgoing arcs into a shape's compiled expression.
func arcsFromNeighborhood(n rdf.Neighborhood) []PendingItem {
	items := make([]PendingItem, len(n.Arcs))
	for i, a := range n.Arcs {
		items[i] = PendingItem{Predicate: a.Predicate, Object: a.Term}
	}
	return items
}

// MatchNeighborhood matches e against every arc in n, in n's own order.
func MatchNeighborhood(ctx context.Context, e Expr, n rdf.Neighborhood, maxSteps int) (MatchResult, error) {
	return MatchBag(ctx, e, arcsFromNeighborhood(n), maxSteps)
}
