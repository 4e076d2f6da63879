package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySchema is for schema compilation errors (C5).
	CategorySchema

	// CategoryRBE is for regular bag expression matcher errors (C3/C4).
	CategoryRBE

	// CategoryRDF is for RDF abstraction / backend errors (C1).
	CategoryRDF

	// CategoryValidation is for shape-validation engine errors (C7).
	CategoryValidation

	// CategoryShapeMap is for shape-map and association errors (C6).
	CategoryShapeMap

	// CategoryReport is for report-assembly errors (C8).
	CategoryReport
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySchema:
		return "schema"
	case CategoryRBE:
		return "rbe"
	case CategoryRDF:
		return "rdf"
	case CategoryValidation:
		return "validation"
	case CategoryShapeMap:
		return "shapemap"
	case CategoryReport:
		return "report"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_CLOSED_SHAPE_REMAINDER").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code: an IR index
	// out of range, or a shape-map entry reaching an impossible state.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)

	// E_MAX_STEPS_EXCEEDED indicates a caller-supplied step budget (§4.4, §5)
	// was exhausted before the matcher or the fixed-point driver converged.
	E_MAX_STEPS_EXCEEDED = code("E_MAX_STEPS_EXCEEDED", CategorySentinel)
)

// Schema compilation codes (C5).
var (
	// E_SHAPE_LABEL_NOT_FOUND indicates a Ref resolves to an undeclared shape label.
	E_SHAPE_LABEL_NOT_FOUND = code("E_SHAPE_LABEL_NOT_FOUND", CategorySchema)

	// E_TRIPLE_EXPR_LABEL_NOT_FOUND indicates a TripleExprRef resolves to an
	// undeclared triple expression label.
	E_TRIPLE_EXPR_LABEL_NOT_FOUND = code("E_TRIPLE_EXPR_LABEL_NOT_FOUND", CategorySchema)

	// E_EXTENSION_CYCLE indicates the `extends` graph contains a cycle, which
	// is forbidden (§4.5 step 3).
	E_EXTENSION_CYCLE = code("E_EXTENSION_CYCLE", CategorySchema)

	// E_NEG_CYCLE indicates the negation-dependency graph contains a cycle
	// with at least one negative edge (§4.5 step 4, §9).
	E_NEG_CYCLE = code("E_NEG_CYCLE", CategorySchema)

	// E_IDX_OUT_OF_RANGE indicates a ShapeLabelIdx or triple-expression index
	// does not resolve within the compiled IR arena. Internal invariant.
	E_IDX_OUT_OF_RANGE = code("E_IDX_OUT_OF_RANGE", CategorySchema)

	// E_INVALID_FACET indicates an XsFacet combination is structurally invalid
	// (e.g., minInclusive > maxInclusive).
	E_INVALID_FACET = code("E_INVALID_FACET", CategorySchema)
)

// RBE codes (C3/C4).
var (
	// E_UNEXPECTED_EMPTY indicates an Empty expression was derived against a
	// controlled predicate it does not expect (§4.4).
	E_UNEXPECTED_EMPTY = code("E_UNEXPECTED_EMPTY", CategoryRBE)

	// E_UNEXPECTED_SYMBOL indicates a Symbol expression saw a predicate other
	// than the one it expects, and that predicate is controlled (§4.4).
	E_UNEXPECTED_SYMBOL = code("E_UNEXPECTED_SYMBOL", CategoryRBE)

	// E_MAX_CARDINALITY_ZERO indicates a Symbol's max cardinality reached zero
	// before a matching value was consumed.
	E_MAX_CARDINALITY_ZERO = code("E_MAX_CARDINALITY_ZERO", CategoryRBE)

	// E_CARDINALITY_ZERO_ZERO_DERIV indicates Repeat(e,0,0) derived into a
	// nullable expression, which is a contradiction (§4.4).
	E_CARDINALITY_ZERO_ZERO_DERIV = code("E_CARDINALITY_ZERO_ZERO_DERIV", CategoryRBE)

	// E_NON_NULLABLE_MATCH indicates the residual expression after consuming
	// the whole bag is not nullable (§4.4, §8).
	E_NON_NULLABLE_MATCH = code("E_NON_NULLABLE_MATCH", CategoryRBE)

	// E_RANGE_LOWER_BOUND_BIGGER_MAX indicates mkRangeSymbol was asked to
	// build a Symbol with min > max (§4.3).
	E_RANGE_LOWER_BOUND_BIGGER_MAX = code("E_RANGE_LOWER_BOUND_BIGGER_MAX", CategoryRBE)

	// E_COND_FAILED indicates a match condition rejected a (key,value) pair;
	// the condition's own message is attached as a Detail.
	E_COND_FAILED = code("E_COND_FAILED", CategoryRBE)
)

// RDF abstraction codes (C1).
var (
	// E_BACKEND_IO indicates the RDF backend failed to produce triples
	// (e.g., a SPARQL endpoint request failed).
	E_BACKEND_IO = code("E_BACKEND_IO", CategoryRDF)

	// E_UNSUPPORTED_PATH indicates a SHACL path feature the native engine
	// does not evaluate (§4.6, §9: alternative/inverse/zeroOrMore/etc).
	E_UNSUPPORTED_PATH = code("E_UNSUPPORTED_PATH", CategoryRDF)
)

// Validation engine codes (C7).
var (
	// E_CLOSED_SHAPE_REMAINDER indicates a closed shape's neighborhood has
	// predicates outside the declared set plus `extra` (§4.6 step 4, §8 scenario 2).
	E_CLOSED_SHAPE_REMAINDER = code("E_CLOSED_SHAPE_REMAINDER", CategoryValidation)

	// E_SHAPE_AND_FAILED indicates at least one branch of a ShapeAnd failed.
	E_SHAPE_AND_FAILED = code("E_SHAPE_AND_FAILED", CategoryValidation)

	// E_SHAPE_OR_FAILED indicates every branch of a ShapeOr failed.
	E_SHAPE_OR_FAILED = code("E_SHAPE_OR_FAILED", CategoryValidation)

	// E_SHAPE_NOT_FAILED indicates the negated shape of a ShapeNot conformed
	// (so the ShapeNot itself fails).
	E_SHAPE_NOT_FAILED = code("E_SHAPE_NOT_FAILED", CategoryValidation)

	// E_NODE_KIND_MISMATCH indicates a NodeConstraint's required node kind
	// (IRI/BlankNode/Literal/NonLiteral) does not match the focus node.
	E_NODE_KIND_MISMATCH = code("E_NODE_KIND_MISMATCH", CategoryValidation)

	// E_DATATYPE_MISMATCH indicates a literal's datatype IRI does not match
	// the NodeConstraint's required datatype.
	E_DATATYPE_MISMATCH = code("E_DATATYPE_MISMATCH", CategoryValidation)

	// E_VALUE_SET_MISS indicates a node does not match any ValueSetValue.
	E_VALUE_SET_MISS = code("E_VALUE_SET_MISS", CategoryValidation)

	// E_FACET_VIOLATION indicates an XsFacet check failed (length, pattern,
	// numeric bounds, totalDigits, fractionDigits).
	E_FACET_VIOLATION = code("E_FACET_VIOLATION", CategoryValidation)

	// E_DESCENDANT_SHAPE_FAILED indicates a shape's `extends` base failed to
	// validate (§4.6 step 5).
	E_DESCENDANT_SHAPE_FAILED = code("E_DESCENDANT_SHAPE_FAILED", CategoryValidation)

	// E_ABSTRACT_SHAPE_DIRECT indicates an abstract shape was validated
	// directly rather than through a descendant (§4.6 step 5).
	E_ABSTRACT_SHAPE_DIRECT = code("E_ABSTRACT_SHAPE_DIRECT", CategoryValidation)

	// E_DESCENDANTS_SHAPE_FAILED indicates every descendant of an abstract
	// shape failed to validate (§4.6 step 6).
	E_DESCENDANTS_SHAPE_FAILED = code("E_DESCENDANTS_SHAPE_FAILED", CategoryValidation)

	// E_FAILED_PENDING indicates a pending obligation was never discharged
	// to a terminal status before the fixed-point loop terminated (§4.6 step 2).
	E_FAILED_PENDING = code("E_FAILED_PENDING", CategoryValidation)

	// E_MIN_COUNT indicates a SHACL property shape's sh:minCount was violated.
	E_MIN_COUNT = code("E_MIN_COUNT", CategoryValidation)

	// E_MAX_COUNT indicates a SHACL property shape's sh:maxCount was violated.
	E_MAX_COUNT = code("E_MAX_COUNT", CategoryValidation)
)

// Shape-map codes (C6).
var (
	// E_INCONSISTENT indicates a (node, shape) pair received both a
	// Conformant and a NonConformant status within one run (§3, §4.7, §8).
	E_INCONSISTENT = code("E_INCONSISTENT", CategoryShapeMap)

	// E_MALFORMED_ASSOCIATION indicates a shape-map input line/entry could
	// not be parsed into a NodeSelector/ShapeSelector pair (§6).
	E_MALFORMED_ASSOCIATION = code("E_MALFORMED_ASSOCIATION", CategoryShapeMap)
)

// Report codes (C8).
var (
	// E_UNKNOWN_FORMAT indicates a report.Format value outside the supported
	// set was requested.
	E_UNKNOWN_FORMAT = code("E_UNKNOWN_FORMAT", CategoryReport)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	E_MAX_STEPS_EXCEEDED,
	// Schema
	E_SHAPE_LABEL_NOT_FOUND,
	E_TRIPLE_EXPR_LABEL_NOT_FOUND,
	E_EXTENSION_CYCLE,
	E_NEG_CYCLE,
	E_IDX_OUT_OF_RANGE,
	E_INVALID_FACET,
	// RBE
	E_UNEXPECTED_EMPTY,
	E_UNEXPECTED_SYMBOL,
	E_MAX_CARDINALITY_ZERO,
	E_CARDINALITY_ZERO_ZERO_DERIV,
	E_NON_NULLABLE_MATCH,
	E_RANGE_LOWER_BOUND_BIGGER_MAX,
	E_COND_FAILED,
	// RDF
	E_BACKEND_IO,
	E_UNSUPPORTED_PATH,
	// Validation
	E_CLOSED_SHAPE_REMAINDER,
	E_SHAPE_AND_FAILED,
	E_SHAPE_OR_FAILED,
	E_SHAPE_NOT_FAILED,
	E_NODE_KIND_MISMATCH,
	E_DATATYPE_MISMATCH,
	E_VALUE_SET_MISS,
	E_FACET_VIOLATION,
	E_DESCENDANT_SHAPE_FAILED,
	E_ABSTRACT_SHAPE_DIRECT,
	E_DESCENDANTS_SHAPE_FAILED,
	E_FAILED_PENDING,
	E_MIN_COUNT,
	E_MAX_COUNT,
	// ShapeMap
	E_INCONSISTENT,
	E_MALFORMED_ASSOCIATION,
	// Report
	E_UNKNOWN_FORMAT,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
