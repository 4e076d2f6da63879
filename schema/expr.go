package schema

import (
	"fmt"

	"github.com/rudof-project/rudof-sub005/rbe"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// ShapeExpr is a compiled shape expression node. Like rbe.Expr, it is a
// sealed interface: ShapeAnd, ShapeOr, ShapeNot, NodeConstraint, Shape,
// Ref, and External are its only variants.
type ShapeExpr interface {
	shapeExprNode()
}

// ShapeAnd requires a node to conform to every sub-expression.
type ShapeAnd struct{ Exprs []ShapeExpr }

func (ShapeAnd) shapeExprNode() {}

// ShapeOr requires a node to conform to at least one sub-expression.
type ShapeOr struct{ Exprs []ShapeExpr }

func (ShapeOr) shapeExprNode() {}

// ShapeNot requires a node NOT to conform to Sub. Builder.Build does not
// fail when ShapeNot participates in a reference cycle (E_NEG_CYCLE); it
// records the shapes on the cycle (Schema.HasNegCycle, NegCycleShapes),
// since such a cycle has no well-defined fixed point.
type ShapeNot struct{ Sub ShapeExpr }

func (ShapeNot) shapeExprNode() {}

// NodeKind classifies the kind of RDF term a NodeConstraint permits.
type NodeKind uint8

const (
	// AnyNodeKind imposes no node-kind restriction.
	AnyNodeKind NodeKind = iota
	IRIKind
	BlankNodeKind
	LiteralKind
	NonLiteralKind
)

func (k NodeKind) String() string {
	switch k {
	case IRIKind:
		return "iri"
	case BlankNodeKind:
		return "bnode"
	case LiteralKind:
		return "literal"
	case NonLiteralKind:
		return "nonliteral"
	default:
		return "any"
	}
}

// FacetKind names the XSD facet a XsFacet entry applies.
type FacetKind uint8

const (
	FacetMinInclusive FacetKind = iota
	FacetMaxInclusive
	FacetMinExclusive
	FacetMaxExclusive
	FacetLength
	FacetMinLength
	FacetMaxLength
	FacetPattern
	FacetTotalDigits
	FacetFractionDigits
)

// XsFacet is a single XSD facet constraint (minInclusive, length, pattern,
// ...) attached to a NodeConstraint. Bound carries the numeric bound for
// numeric/length facets; Pattern carries the regex source for
// FacetPattern, with PatternFlags its inline flags (e.g. "i").
type XsFacet struct {
	Kind         FacetKind
	Bound        float64
	Pattern      string
	PatternFlags string
}

func (f XsFacet) String() string {
	switch f.Kind {
	case FacetPattern:
		return fmt.Sprintf("pattern(/%s/%s)", f.Pattern, f.PatternFlags)
	default:
		return fmt.Sprintf("%v(%v)", f.Kind, f.Bound)
	}
}

// ValueSetValueKind discriminates the value-set member shapes spec.md §3
// names: a plain exact term, an IRI stem or literal stem (prefix match
// over the term's lexical form), a BCP47 language tag (exact match
// against a language-tagged literal's tag), or a language stem (prefix
// match over the tag's subtags, so "en" covers "en-US" but not
// "english").
type ValueSetValueKind uint8

const (
	ExactValue ValueSetValueKind = iota
	IRIStemValue
	LiteralStemValue
	LanguageTagValue
	LanguageStemValue
)

func (k ValueSetValueKind) String() string {
	switch k {
	case IRIStemValue:
		return "IRIStem"
	case LiteralStemValue:
		return "LiteralStem"
	case LanguageTagValue:
		return "LanguageTag"
	case LanguageStemValue:
		return "LanguageStem"
	default:
		return "Exact"
	}
}

// ValueSetValue is one member of a NodeConstraint's value set. Stem holds
// the prefix for IRIStemValue/LiteralStemValue/LanguageStemValue; Tag
// holds the language tag for LanguageTagValue. Exclusion marks the ShEx
// "exclusion" form: a stem/tag member explicitly carved out of a broader
// stem elsewhere in the same value set.
type ValueSetValue struct {
	Kind      ValueSetValueKind
	Exact     rdf.Term
	Stem      string
	Tag       string
	Exclusion bool
}

// NodeConstraint restricts the set of terms a node may be. All fields are
// independently optional (zero-valued) except NodeKind; a NodeConstraint
// with only NodeKind set behaves as a pure node-kind check.
type NodeConstraint struct {
	Kind     NodeKind
	Datatype rdf.Term // zero Term means "no datatype restriction"
	HasDT    bool
	Facets   []XsFacet
	Values   []ValueSetValue
	HasValue bool
}

func (NodeConstraint) shapeExprNode() {}

// TripleConstraintMeta augments an rbe.Symbol compiled from a single
// TripleConstraint with the data the validator needs that the rbe package
// itself does not model: which predicate it came from, whether it walks
// the inverse arc direction, and which ShapeExpr (if any) the matched
// object must itself conform to. The matcher only decides cardinality and
// node-kind/datatype eligibility through the rbe.Symbol's Cond; recursive
// shape conformance on the matched value is checked separately by the
// validation driver (C7) using this side table, since that check needs
// the RDF graph and the shape table, not just the object term in
// isolation.
type TripleConstraintMeta struct {
	Predicate rdf.Term
	Inverse   bool
	ValueExpr ShapeLabelIdx // NoIdx if the constraint carries no value shape
	// Symbol is this constraint's own compiled cardinality/Cond expression
	// in isolation, before it was folded into Shape.Expression's combined
	// And tree. checkShape uses it, together with rbe.MatchPartitioned,
	// to decide which arc belongs to which constraint when two or more
	// TripleConstraints sharing the same predicate would otherwise make
	// that assignment ambiguous (rbe/kpartition.go).
	Symbol rbe.Expr
}

// Shape is a compiled node shape: a triple expression over the node's
// neighborhood, plus closedness and extension metadata.
type Shape struct {
	// Expression is the compiled rbe.Expr the node's outgoing arcs (or
	// incoming, for any TripleConstraintMeta with Inverse set) must match.
	Expression Expr
	// Constraints lists every TripleConstraint folded into Expression, in
	// declaration order, for the side-table lookup TripleConstraintMeta
	// documents.
	Constraints []TripleConstraintMeta
	// Closed, if true, requires every arc not covered by Constraints or
	// Extra to be absent (SPEC_FULL §10.5).
	Closed bool
	// Extra lists predicates exempt from the closed check even though no
	// TripleConstraint names them.
	Extra []rdf.Term
	// Extends lists the base shapes this shape inherits from (already
	// expanded into Expression by Builder.Build; retained here for
	// diagnostics and for the "abstract shape cannot be a direct target"
	// check).
	Extends  []ShapeLabelIdx
	Abstract bool
}

func (Shape) shapeExprNode() {}

// Expr is a local alias for rbe.Expr, named for readability inside the
// schema package's own declarations.
type Expr = rbe.Expr

// Ref points at another shape by index, the compiled form of a shape
// label reference inside a shape expression (e.g. "@<otherShape>").
type Ref struct{ Label ShapeLabelIdx }

func (Ref) shapeExprNode() {}

// External marks a shape declared EXTERNAL: its conformance is delegated
// to a collaborator outside this schema (e.g. a SPARQL-backed checker).
// Non-goal per SPEC_FULL's Non-goals: External always reports
// non-conformant unless a caller supplies an external resolver, which this
// module does not implement.
type External struct{ Label ShapeLabel }

func (External) shapeExprNode() {}
