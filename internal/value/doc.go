// Package value provides value comparison and RDF-literal kind detection
// utilities for the rudof-sub005 module. It consolidates functionality
// from v1's internal/valuecmp (deterministic ordering) and
// internal/valuekind (runtime type classification), the latter re-themed
// here to classify RDF literal lexical forms by XSD datatype rather than
// arbitrary Go runtime values.
//
// # Internal Package
//
// This package is internal to the rudof-sub005 module and is not
// importable by external consumers per Go's internal/ package semantics.
// It is used by the validation layer (validate/nodeconstraint.go) for
// XSD facet evaluation: classifying a literal's lexical form and
// comparing it against a facet bound without losing precision.
//
// # Value Comparison
//
// The package implements a total order over supported types for
// deterministic comparisons in tests and constraint validation:
//
//   - [TypeStrata] classifies values into ordered strata: Nil < Bool < Numeric < String < Slice
//   - [ValueOrder] compares two values, returning -1/0/1 for ordering
//   - [Less] is a convenience wrapper for sort operations
//
// Supported types for comparison:
//   - nil
//   - bool (false < true)
//   - integers: int, int8-64, uint, uint8-64, uintptr
//   - floats: float32, float64 (with special handling: -Inf < finite < +Inf < NaN)
//   - string and *regexp.Regexp (regexp compared via String())
//   - slices of supported types (lexicographic comparison)
//
// IMPORTANT: Only predeclared scalar types are supported. Named scalar
// types (e.g., type MyInt int) return InvalidStrata and will cause
// ValueOrder to error. This is intentional for consistency across all
// value extraction functions. All slices are supported structurally (via
// reflect), but their elements must be supported types.
//
// Maps, structs, and other complex types are intentionally unsupported.
// Callers should normalize to supported primitives before ordering.
//
// # Literal Kind Detection
//
// [ClassifyLiteral] maps an RDF literal's lexical form and XSD datatype
// IRI to a semantic [Kind], parsing the lexical form into the matching Go
// type:
//
//   - [IntKind]: xsd:integer and its derived integer-family datatypes (parsed as int64)
//   - [FloatKind]: xsd:decimal/xsd:double/xsd:float (parsed as float64)
//   - [BoolKind]: xsd:boolean (parsed as bool)
//   - [StringKind]: any other named datatype, or no recognized numeric/boolean family
//   - [UnspecifiedKind]: no datatype at all
//
// ok is false when the datatype names a numeric or boolean family but the
// lexical form fails to parse as one -- an ill-formed literal per XSD,
// which callers should treat as a facet violation rather than silently
// falling back to string comparison.
//
// # Large Integer Precision
//
// Parsing straight from the lexical form to int64 (rather than via
// float64) preserves integers beyond 2^53 exactly, where a
// strconv.ParseFloat round-trip would lose precision. [ValueOrder]'s
// [CompareInt64Float64]/[CompareUint64Float64] then compare an IntKind
// value against a facet bound (always a float64) without that precision
// loss, by converting the float side to an integer instead.
//
// # Mixed Float/Integer Comparison
//
// For mixed float/integer comparisons, [ValueOrder] uses
// [CompareInt64Float64] and [CompareUint64Float64] to preserve
// transitivity for values > 2^53. These functions convert the float to
// integer (not vice versa) when the float is a whole number, avoiding the
// precision loss that occurs when large integers are converted to
// float64.
//
// This ensures the ordering relation remains transitive across all
// supported values:
//   - ValueOrder(uint64(2^53+1), float64(2^53)) returns 1 (greater), not 0
//   - ValueOrder(int64(2^53+1), float64(2^53)) returns 1 (greater), not 0
//
// # Thread Safety
//
// All functions in this package are stateless and safe for concurrent
// use. No global state is maintained.
//
// # Stdlib-Only Dependencies
//
// This package depends only on stdlib. It has no dependencies on other
// packages and can be imported by any layer.
package value
