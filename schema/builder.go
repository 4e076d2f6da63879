package schema

import (
	"fmt"

	"github.com/rudof-project/rudof-sub005/diag"
	"github.com/rudof-project/rudof-sub005/rbe"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// Builder assembles a Schema from shape declarations, resolving Ref
// indices, expanding Extends chains, and checking for extension and
// negation cycles before freezing the result.
//
// Builder trusts that callers provide semantically valid shape
// expressions; it does not parse shape syntax. Use it as the second stage
// after a schema parser produces ShapeExpr trees, or build shapes
// directly for tests and programmatic schemas.
type Builder struct {
	collector *diag.Collector
	labels    []ShapeLabel
	byLabel   map[ShapeLabel]ShapeLabelIdx
	exprs     []ShapeExpr
	start     ShapeLabelIdx
}

// NewBuilder creates an empty Builder. Issues encountered during Build
// are reported through collector; collector may be nil, in which case
// Build still returns an error on the first problem found but no
// diagnostics are recorded anywhere else.
func NewBuilder(collector *diag.Collector) *Builder {
	return &Builder{
		collector: collector,
		byLabel:   make(map[ShapeLabel]ShapeLabelIdx),
		start:     NoIdx,
	}
}

// DeclareLabel allocates (or returns the existing) index for label,
// allowing forward references: a Ref can point at a label before its
// shape expression is Defined.
func (b *Builder) DeclareLabel(label ShapeLabel) ShapeLabelIdx {
	if idx, ok := b.byLabel[label]; ok {
		return idx
	}
	idx := ShapeLabelIdx(len(b.labels))
	b.labels = append(b.labels, label)
	b.exprs = append(b.exprs, nil)
	b.byLabel[label] = idx
	return idx
}

// Define sets the compiled expression for a previously declared label.
func (b *Builder) Define(idx ShapeLabelIdx, expr ShapeExpr) {
	if !idx.IsValid() || int(idx) >= len(b.exprs) {
		return
	}
	b.exprs[idx] = expr
}

// SetStart marks label as the schema's start shape. label must already be
// declared.
func (b *Builder) SetStart(label ShapeLabel) {
	if idx, ok := b.byLabel[label]; ok {
		b.start = idx
	}
}

func (b *Builder) report(code diag.Code, message string) error {
	issue := diag.NewIssue(diag.Error, code, message).Build()
	if b.collector != nil {
		b.collector.Collect(issue)
	}
	return fmt.Errorf("%s: %s", code, message)
}

// Build resolves every Ref, expands Extends chains into their shape's
// compiled Expression, checks for extension and negation cycles, and
// returns the frozen Schema. On the first fatal problem, Build returns a
// nil Schema and a non-nil error (also recorded via the collector, if one
// was supplied).
func (b *Builder) Build() (*Schema, error) {
	for idx, e := range b.exprs {
		if e == nil {
			return nil, b.report(diag.E_SHAPE_LABEL_NOT_FOUND,
				fmt.Sprintf("shape label %s declared but never defined", b.labels[idx]))
		}
	}

	if err := b.checkRefsResolve(); err != nil {
		return nil, err
	}
	if err := b.checkExtensionAcyclic(); err != nil {
		return nil, err
	}
	if err := b.expandExtends(); err != nil {
		return nil, err
	}
	negCycleShapes := b.checkNegationAcyclic()

	labels := make([]ShapeLabel, len(b.labels))
	copy(labels, b.labels)
	exprs := make([]ShapeExpr, len(b.exprs))
	copy(exprs, b.exprs)
	byLabel := make(map[ShapeLabel]ShapeLabelIdx, len(b.byLabel))
	for k, v := range b.byLabel {
		byLabel[k] = v
	}

	return &Schema{
		labels:         labels,
		byLabel:        byLabel,
		exprs:          exprs,
		start:          b.start,
		hasNegCycle:    len(negCycleShapes) > 0,
		negCycleShapes: negCycleShapes,
	}, nil
}

// checkRefsResolve walks every shape expression and confirms each Ref
// (direct, or reachable through extends) names a declared index.
func (b *Builder) checkRefsResolve() error {
	var err error
	for _, e := range b.exprs {
		walkRefs(e, func(idx ShapeLabelIdx) {
			if err == nil && (!idx.IsValid() || int(idx) >= len(b.exprs)) {
				err = b.report(diag.E_SHAPE_LABEL_NOT_FOUND,
					fmt.Sprintf("reference to undeclared shape index %s", idx))
			}
		})
		if err != nil {
			return err
		}
	}
	for idx := range b.exprs {
		bases, _ := b.extendsOf(ShapeLabelIdx(idx))
		for _, base := range bases {
			if !base.IsValid() || int(base) >= len(b.exprs) {
				return b.report(diag.E_SHAPE_LABEL_NOT_FOUND,
					fmt.Sprintf("shape %s extends undeclared shape index %s", ShapeLabelIdx(idx), base))
			}
		}
	}
	return nil
}

// extendsOf returns the Extends list of the Shape at idx, or nil if idx
// does not denote a Shape.
func (b *Builder) extendsOf(idx ShapeLabelIdx) ([]ShapeLabelIdx, bool) {
	if !idx.IsValid() || int(idx) >= len(b.exprs) {
		return nil, false
	}
	sh, ok := b.exprs[idx].(Shape)
	if !ok {
		return nil, false
	}
	return sh.Extends, true
}

// walkRefs calls visit on every Ref index reachable from e, recursing
// through ShapeAnd/ShapeOr/ShapeNot but not into a Shape's own
// Expression (triple expressions reference predicates, not shape labels,
// except through TripleConstraintMeta.ValueExpr which is walked
// separately since it does not nest inside the ShapeExpr tree).
func walkRefs(e ShapeExpr, visit func(ShapeLabelIdx)) {
	switch n := e.(type) {
	case Ref:
		visit(n.Label)
	case ShapeAnd:
		for _, s := range n.Exprs {
			walkRefs(s, visit)
		}
	case ShapeOr:
		for _, s := range n.Exprs {
			walkRefs(s, visit)
		}
	case ShapeNot:
		walkRefs(n.Sub, visit)
	case Shape:
		for _, c := range n.Constraints {
			if c.ValueExpr.IsValid() {
				visit(c.ValueExpr)
			}
		}
	}
}

// cycleState tracks DFS coloring for cycle detection: 0=white (unvisited),
// 1=gray (on stack), 2=black (finished).
type cycleState []uint8

func newCycleState(n int) cycleState { return make(cycleState, n) }

// checkExtensionAcyclic verifies the Extends graph has no cycle. A shape
// extending itself, directly or transitively, has no well-defined merged
// expression.
func (b *Builder) checkExtensionAcyclic() error {
	state := newCycleState(len(b.exprs))
	var visit func(idx ShapeLabelIdx) error
	visit = func(idx ShapeLabelIdx) error {
		if state[idx] == 2 {
			return nil
		}
		if state[idx] == 1 {
			return b.report(diag.E_EXTENSION_CYCLE,
				fmt.Sprintf("shape %s participates in an extends cycle", b.labels[idx]))
		}
		state[idx] = 1
		bases, _ := b.extendsOf(idx)
		for _, base := range bases {
			if err := visit(base); err != nil {
				return err
			}
		}
		state[idx] = 2
		return nil
	}
	for idx := range b.exprs {
		if err := visit(ShapeLabelIdx(idx)); err != nil {
			return err
		}
	}
	return nil
}

// expandExtends merges each Shape's base shapes' Expression, Closed,
// Extra, and Constraints into the derived shape, using mkAndExpr so the
// merged expression is the conjunction of everything every ancestor
// requires (SPEC_FULL §10.5). Extends is already verified acyclic by the
// time this runs, so a single post-order pass suffices.
func (b *Builder) expandExtends() error {
	done := make([]bool, len(b.exprs))
	var expand func(idx ShapeLabelIdx) error
	expand = func(idx ShapeLabelIdx) error {
		if done[idx] {
			return nil
		}
		sh, ok := b.exprs[idx].(Shape)
		if !ok {
			done[idx] = true
			return nil
		}
		merged := sh
		for _, baseIdx := range sh.Extends {
			if err := expand(baseIdx); err != nil {
				return err
			}
			base := b.exprs[baseIdx].(Shape)
			merged.Expression = mkAndExpr(merged.Expression, base.Expression)
			merged.Constraints = append(append([]TripleConstraintMeta{}, merged.Constraints...), base.Constraints...)
			merged.Extra = append(append([]rdf.Term{}, merged.Extra...), base.Extra...)
			merged.Closed = merged.Closed || base.Closed
		}
		b.exprs[idx] = merged
		done[idx] = true
		return nil
	}
	for idx := range b.exprs {
		if err := expand(ShapeLabelIdx(idx)); err != nil {
			return err
		}
	}
	return nil
}

// mkAndExpr conjoins two rbe expressions as a plain rbe.And, returning the
// other side unchanged when one side is nil (a shape with no own
// expression, only inherited ones).
func mkAndExpr(a, b rbe.Expr) rbe.Expr {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return rbe.And{Left: a, Right: b}
}

// checkNegationAcyclic detects, but does not fail on, a ShapeNot
// participating in a reference cycle: walking through Ref, ShapeAnd,
// ShapeOr, and ShapeNot, a path that returns to its own starting index
// while having crossed at least one ShapeNot has no fixed point (§10.5 /
// original's negative-dependency SCC check). Per spec.md §8 scenario 5,
// this is an IR-level, non-fatal property: Build succeeds regardless, and
// every shape found on such a cycle is reported back so the caller can
// record Schema.HasNegCycle and refuse to run the validation driver
// (validate.Engine.Validate returns NegCycleError) rather than rejecting
// the schema outright at compile time.
func (b *Builder) checkNegationAcyclic() []ShapeLabelIdx {
	state := newCycleState(len(b.exprs))
	var cyclic []ShapeLabelIdx
	seen := make(map[ShapeLabelIdx]bool)
	record := func(idx ShapeLabelIdx) {
		if !seen[idx] {
			seen[idx] = true
			cyclic = append(cyclic, idx)
			b.report(diag.E_NEG_CYCLE,
				fmt.Sprintf("shape %s participates in a negative dependency cycle", b.labels[idx]))
		}
	}

	var visit func(idx ShapeLabelIdx, crossedNot bool)
	visit = func(idx ShapeLabelIdx, crossedNot bool) {
		if state[idx] == 2 {
			return
		}
		if state[idx] == 1 {
			if crossedNot {
				record(idx)
			}
			return
		}
		state[idx] = 1
		walkDependencies(b.exprs[idx], func(next ShapeLabelIdx, viaNot bool) {
			visit(next, crossedNot || viaNot)
		})
		state[idx] = 2
	}
	for idx := range b.exprs {
		for i := range state {
			state[i] = 0
		}
		visit(ShapeLabelIdx(idx), false)
	}
	return cyclic
}

// walkDependencies is like walkRefs but also reports, for each reference,
// whether reaching it crossed a ShapeNot.
func walkDependencies(e ShapeExpr, visit func(idx ShapeLabelIdx, viaNot bool)) {
	var walk func(e ShapeExpr, viaNot bool)
	walk = func(e ShapeExpr, viaNot bool) {
		switch n := e.(type) {
		case Ref:
			visit(n.Label, viaNot)
		case ShapeAnd:
			for _, s := range n.Exprs {
				walk(s, viaNot)
			}
		case ShapeOr:
			for _, s := range n.Exprs {
				walk(s, viaNot)
			}
		case ShapeNot:
			walk(n.Sub, true)
		case Shape:
			for _, c := range n.Constraints {
				if c.ValueExpr.IsValid() {
					visit(c.ValueExpr, viaNot)
				}
			}
		}
	}
	walk(e, false)
}
