package value

import "strconv"

// Kind identifies the lexical class an RDF literal's XSD datatype puts it
// in for facet evaluation purposes (spec.md §3): numeric facets
// (minInclusive, totalDigits, ...) apply to IntKind/FloatKind, length
// facets apply to StringKind, and facets never apply to BoolKind or
// UnspecifiedKind (no datatype, or a datatype this package does not
// recognize as numeric/boolean).
type Kind int

const (
	// UnspecifiedKind is a literal with no datatype, or an unrecognized one.
	UnspecifiedKind Kind = iota
	// StringKind is a plain or language-tagged string literal.
	StringKind
	// IntKind is an XSD integer-family literal (xsd:integer, xsd:int, ...).
	IntKind
	// FloatKind is an XSD decimal/float-family literal (xsd:decimal, xsd:double, ...).
	FloatKind
	// BoolKind is an xsd:boolean literal.
	BoolKind
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case UnspecifiedKind:
		return "UnspecifiedKind"
	case StringKind:
		return "StringKind"
	case IntKind:
		return "IntKind"
	case FloatKind:
		return "FloatKind"
	case BoolKind:
		return "BoolKind"
	default:
		return "UnknownKind"
	}
}

const xsdNS = "http://www.w3.org/2001/XMLSchema#"

// integerFamily lists the XSD datatypes this package treats as IntKind
// rather than FloatKind: values that parse exactly as int64 without
// a decimal point, so comparisons can use order.go's precision-safe
// integer paths instead of round-tripping through float64.
var integerFamily = map[string]bool{
	xsdNS + "integer":           true,
	xsdNS + "int":               true,
	xsdNS + "long":              true,
	xsdNS + "short":             true,
	xsdNS + "byte":              true,
	xsdNS + "nonNegativeInteger": true,
	xsdNS + "positiveInteger":    true,
	xsdNS + "nonPositiveInteger": true,
	xsdNS + "negativeInteger":    true,
	xsdNS + "unsignedLong":       true,
	xsdNS + "unsignedInt":        true,
	xsdNS + "unsignedShort":      true,
	xsdNS + "unsignedByte":       true,
}

var floatFamily = map[string]bool{
	xsdNS + "decimal": true,
	xsdNS + "double":  true,
	xsdNS + "float":   true,
}

const xsdBoolean = xsdNS + "boolean"

// ClassifyLiteral classifies an RDF literal's lexical form according to
// its datatype IRI, returning the Kind it belongs to and the literal's
// value parsed into the matching Go type (int64, float64, bool, or the
// lexical string itself for StringKind/UnspecifiedKind).
//
// ok is false when datatype names a numeric or boolean family but lexical
// fails to parse as one (e.g. datatype xsd:integer, lexical "abc") -- an
// ill-formed literal per XSD, which callers should treat as a facet
// violation rather than silently falling back to string comparison.
func ClassifyLiteral(lexical, datatype string) (Kind, any, bool) {
	switch {
	case integerFamily[datatype]:
		n, err := strconv.ParseInt(lexical, 10, 64)
		if err != nil {
			return IntKind, lexical, false
		}
		return IntKind, n, true
	case floatFamily[datatype]:
		f, err := strconv.ParseFloat(lexical, 64)
		if err != nil {
			return FloatKind, lexical, false
		}
		return FloatKind, f, true
	case datatype == xsdBoolean:
		b, err := strconv.ParseBool(lexical)
		if err != nil {
			return BoolKind, lexical, false
		}
		return BoolKind, b, true
	case datatype == "":
		return UnspecifiedKind, lexical, true
	default:
		return StringKind, lexical, true
	}
}
