// Package validate implements the top-level validation driver (C7): the
// fixed-point loop that discharges a shape map's pending (node, shape)
// pairs against a compiled schema and an RDF graph.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudof-project/rudof-sub005/card"
	"github.com/rudof-project/rudof-sub005/rbe"
	"github.com/rudof-project/rudof-sub005/rdf"
	"github.com/rudof-project/rudof-sub005/schema"
	"github.com/rudof-project/rudof-sub005/shapemap"
)

// DefaultMaxSteps bounds the driver's fixed-point loop the same way
// rbe.DefaultMaxSteps bounds a single bag match.
const DefaultMaxSteps = 10000

// ErrMaxStepsExceeded is returned when the fixed-point loop exhausts its
// step budget with pending pairs still unresolved (§5 Cancellation).
var ErrMaxStepsExceeded = errors.New("validate: exceeded maximum fixed-point steps")

// ErrIRIndexOutOfRange is an internal-invariant failure (§7): a pair
// names a ShapeLabelIdx the schema table does not contain.
var ErrIRIndexOutOfRange = errors.New("validate: shape index out of range")

// NegCycleError is returned by Validate when the compiled Schema has a
// ShapeNot on a negative dependency cycle (§8 scenario 5). Build leaves
// such a schema well-formed at the IR level — HasNegCycle and
// NegCycleShapes are callable before the engine runs — but the fixed-point
// loop has no well-defined semantics to compute, so Validate refuses
// outright rather than looping or guessing.
type NegCycleError struct {
	Shapes []schema.ShapeLabelIdx
}

func (e *NegCycleError) Error() string {
	return fmt.Sprintf("validate: schema has a negation cycle through shapes %v; refusing to validate", e.Shapes)
}

// Engine ties together a compiled Schema and an RDF backend to run
// validation. Engine holds no mutable state of its own; all per-run state
// lives in the shapemap.ShapeMap passed to Validate, so one Engine can
// drive multiple concurrent runs against separate shape maps (§5: "no
// locks are required for the single-threaded contract").
type Engine struct {
	schema   *schema.Schema
	graph    rdf.Graph
	maxSteps int
}

// New creates an Engine. maxSteps <= 0 selects DefaultMaxSteps.
func New(s *schema.Schema, g rdf.Graph, maxSteps int) *Engine {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Engine{schema: s, graph: g, maxSteps: maxSteps}
}

// Validate runs the fixed-point loop over m until no Pending pairs
// remain or the step budget is exhausted (§4.6 "Top-level driver").
// Per-pair semantic failures are recorded on the pair itself and never
// abort the run. A non-nil error comes from a nil context, a schema with a
// negation cycle (NegCycleError), an exhausted step budget
// (ErrMaxStepsExceeded), a cancelled context, or an internal-invariant
// error (bad index, or an Inconsistent conflict), per §7's propagation
// rule.
func (e *Engine) Validate(ctx context.Context, m *shapemap.ShapeMap) error {
	if ctx == nil {
		return fmt.Errorf("validate: nil context")
	}
	if e.schema.HasNegCycle() {
		return &NegCycleError{Shapes: e.schema.NegCycleShapes()}
	}

	steps := 0
	for {
		pending := m.PendingPairs()
		if len(pending) == 0 {
			return nil
		}

		for _, pair := range pending {
			if steps >= e.maxSteps {
				m.ResolveResidualPending(ErrMaxStepsExceeded)
				return ErrMaxStepsExceeded
			}
			steps++

			select {
			case <-ctx.Done():
				m.ResolveResidualPending(ctx.Err())
				return ctx.Err()
			default:
			}

			conformant, reason, newPending, err := e.checkNodeShape(ctx, pair.Node, pair.Shape)
			if err != nil {
				if errors.Is(err, ErrIRIndexOutOfRange) {
					return err
				}
				if aerr := m.AddNonConformant(pair, err); aerr != nil {
					return aerr
				}
				continue
			}

			var assignErr error
			if conformant {
				assignErr = m.AddConformant(pair, reason)
			} else {
				assignErr = m.AddNonConformant(pair, errors.New(reason))
			}
			if assignErr != nil {
				return assignErr
			}

			for _, np := range newPending {
				m.AddPending(np)
			}
		}
	}
}

// checkNodeShape resolves idx to a compiled ShapeExpr and dispatches.
func (e *Engine) checkNodeShape(ctx context.Context, node rdf.Term, idx schema.ShapeLabelIdx) (conformant bool, reason string, pending []shapemap.Pair, err error) {
	expr, ok := e.schema.Expr(idx)
	if !ok {
		return false, "", nil, fmt.Errorf("%w: %s", ErrIRIndexOutOfRange, idx)
	}
	return e.checkShapeExpr(ctx, node, expr)
}

// checkShapeExpr is the dispatch point for every ShapeExpr variant
// (§4.6 "check_node_shape").
func (e *Engine) checkShapeExpr(ctx context.Context, node rdf.Term, expr schema.ShapeExpr) (bool, string, []shapemap.Pair, error) {
	switch n := expr.(type) {
	case schema.ShapeAnd:
		return e.checkAnd(ctx, node, n)
	case schema.ShapeOr:
		return e.checkOr(ctx, node, n)
	case schema.ShapeNot:
		return e.checkNot(ctx, node, n)
	case schema.NodeConstraint:
		ok, reason := nodeConstraintConforms(node, n)
		return ok, reason, nil, nil
	case schema.Shape:
		return e.checkShape(ctx, node, n)
	case schema.Ref:
		return e.checkNodeShape(ctx, node, n.Label)
	case schema.External:
		return false, fmt.Sprintf("external shape %s has no resolver configured", n.Label), nil, nil
	default:
		return false, "", nil, fmt.Errorf("%w: unknown ShapeExpr variant %T", ErrIRIndexOutOfRange, expr)
	}
}

func (e *Engine) checkAnd(ctx context.Context, node rdf.Term, n schema.ShapeAnd) (bool, string, []shapemap.Pair, error) {
	var allPending []shapemap.Pair
	for _, sub := range n.Exprs {
		ok, reason, pending, err := e.checkShapeExpr(ctx, node, sub)
		if err != nil {
			return false, "", nil, err
		}
		allPending = append(allPending, pending...)
		if !ok {
			return false, fmt.Sprintf("ShapeAnd branch failed: %s", reason), allPending, nil
		}
	}
	return true, "all ShapeAnd branches conform", allPending, nil
}

func (e *Engine) checkOr(ctx context.Context, node rdf.Term, n schema.ShapeOr) (bool, string, []shapemap.Pair, error) {
	var reasons []string
	for _, sub := range n.Exprs {
		ok, reason, pending, err := e.checkShapeExpr(ctx, node, sub)
		if err != nil {
			return false, "", nil, err
		}
		if ok {
			return true, fmt.Sprintf("ShapeOr branch conforms: %s", reason), pending, nil
		}
		reasons = append(reasons, reason)
	}
	return false, fmt.Sprintf("no ShapeOr branch conformed: %v", reasons), nil, nil
}

func (e *Engine) checkNot(ctx context.Context, node rdf.Term, n schema.ShapeNot) (bool, string, []shapemap.Pair, error) {
	ok, reason, _, err := e.checkShapeExpr(ctx, node, n.Sub)
	if err != nil {
		return false, "", nil, err
	}
	if ok {
		return false, "ShapeNot: sub-shape unexpectedly conformed", nil, nil
	}
	return true, fmt.Sprintf("ShapeNot satisfied: sub-shape failed (%s)", reason), nil, nil
}

// mkAndExpr conjoins two rbe expressions, tolerating a nil left side for
// a shape with no own expression.
func mkAndExpr(a, b rbe.Expr) rbe.Expr {
	if a == nil {
		return b
	}
	return rbe.And{Left: a, Right: b}
}

// checkShape matches a node's neighborhood against a compiled triple
// expression, applying closed-shape and abstract-shape semantics
// (§4.6 steps 2-6). Value-shape obligations (TripleConstraintMeta with a
// ValueExpr) are returned as new pending pairs rather than checked
// synchronously: the bag match's own success depends only on
// cardinality and the Cond baked into each rbe.Symbol (node
// kind/datatype/facets), not on the nested shape's conformance, matching
// the "Pending obligations" channel described for RBE conditions (§4.6
// step 124 note: new pending obligations are merged, not awaited).
func (e *Engine) checkShape(ctx context.Context, node rdf.Term, sh schema.Shape) (bool, string, []shapemap.Pair, error) {
	if sh.Abstract {
		return false, "abstract shape cannot be a direct validation target", nil, nil
	}

	allowedPreds := make([]rdf.Term, 0, len(sh.Constraints)+len(sh.Extra))
	for _, c := range sh.Constraints {
		allowedPreds = append(allowedPreds, c.Predicate)
	}
	allowedPreds = append(allowedPreds, sh.Extra...)

	inList, remainder, err := e.graph.OutgoingArcsFromList(ctx, node, allowedPreds)
	if err != nil {
		return false, "", nil, fmt.Errorf("validate: reading outgoing arcs: %w", err)
	}

	items := make([]rbe.PendingItem, len(inList.Arcs))
	for i, a := range inList.Arcs {
		items[i] = rbe.PendingItem{Predicate: a.Predicate, Object: a.Term}
	}

	// EXTRA predicates (§4.4's match_bag(expr, bag, open, controlled)
	// contract) are tolerated, not matched: an arc whose predicate appears
	// only in sh.Extra must not make the bag match fail. Since Deriv has
	// no open/controlled mode of its own, each Extra predicate is folded
	// in as a permissive, unconstrained Symbol (min 0, unbounded, no Cond)
	// conjoined onto the shape's own expression before matching, so those
	// arcs are consumed without adding any obligation.
	expr := sh.Expression
	for _, p := range sh.Extra {
		expr = mkAndExpr(expr, rbe.NewSymbol(p, 0, card.Unbounded, rbe.Cond{}))
	}

	res, err := rbe.MatchBag(ctx, expr, items, e.maxSteps)
	if err != nil {
		return false, "", nil, fmt.Errorf("validate: matching triple expression: %w", err)
	}
	if !res.Matched {
		return false, fmt.Sprintf("triple expression did not match node's neighborhood (final=%s)", res.Final), nil, nil
	}

	if sh.Closed && len(remainder) > 0 {
		return false, fmt.Sprintf("closed shape has unexpected properties: %v", remainder), nil, nil
	}

	pending, err := e.pendingObligations(ctx, sh, inList.Arcs)
	if err != nil {
		return false, "", nil, err
	}

	return true, "triple expression matched", pending, nil
}

// pendingObligations emits one pending (arc object, ValueExpr) pair per
// matched triple constraint. When a predicate is named by exactly one
// constraint, every arc for it pairs with that constraint directly. When
// two or more constraints share a predicate (e.g. the same property
// constrained twice with different nested shapes), which arc belongs to
// which constraint is genuinely ambiguous from the bag match alone — And's
// derivative rule (§4) only certifies that some assignment exists. That
// ambiguity is resolved with rbe.MatchPartitioned over each constraint's
// own Symbol expression (rbe/kpartition.go's enumerator); constraints
// built without a Symbol (e.g. hand-built test schemas) fall back to the
// old permissive pairing rather than losing obligations.
func (e *Engine) pendingObligations(ctx context.Context, sh schema.Shape, arcs []rdf.Arc) ([]shapemap.Pair, error) {
	var order []rdf.Term
	byPredicate := make(map[rdf.Term][]schema.TripleConstraintMeta)
	for _, c := range sh.Constraints {
		if !c.ValueExpr.IsValid() {
			continue
		}
		if _, seen := byPredicate[c.Predicate]; !seen {
			order = append(order, c.Predicate)
		}
		byPredicate[c.Predicate] = append(byPredicate[c.Predicate], c)
	}

	var pending []shapemap.Pair
	for _, pred := range order {
		constraints := byPredicate[pred]
		var matching []rdf.Arc
		for _, a := range arcs {
			if a.Predicate == pred {
				matching = append(matching, a)
			}
		}
		if len(matching) == 0 {
			continue
		}

		if !disambiguable(constraints) {
			for _, c := range constraints {
				for _, a := range matching {
					pending = append(pending, shapemap.Pair{Node: a.Term, Shape: c.ValueExpr})
				}
			}
			continue
		}

		items := make([]rbe.PendingItem, len(matching))
		candidates := make([]rbe.Expr, len(constraints))
		for i, a := range matching {
			items[i] = rbe.PendingItem{Predicate: a.Predicate, Object: a.Term}
		}
		for i, c := range constraints {
			candidates[i] = c.Symbol
		}

		assignment, _, ok, err := rbe.MatchPartitioned(ctx, candidates, items, e.maxSteps)
		if err != nil {
			return nil, fmt.Errorf("validate: partitioning shared-predicate constraints: %w", err)
		}
		if !ok {
			for _, c := range constraints {
				for _, a := range matching {
					pending = append(pending, shapemap.Pair{Node: a.Term, Shape: c.ValueExpr})
				}
			}
			continue
		}
		for itemIdx, bucket := range assignment {
			pending = append(pending, shapemap.Pair{Node: matching[itemIdx].Term, Shape: constraints[bucket].ValueExpr})
		}
	}
	return pending, nil
}

// disambiguable reports whether constraints genuinely need
// rbe.MatchPartitioned: more than one constraint sharing a predicate, each
// carrying its own Symbol to match candidate arcs against.
func disambiguable(constraints []schema.TripleConstraintMeta) bool {
	if len(constraints) <= 1 {
		return false
	}
	for _, c := range constraints {
		if c.Symbol == nil {
			return false
		}
	}
	return true
}
