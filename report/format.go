// Package report serializes a shapemap.ShapeMap validation result (C8).
// Serialization is read-only over the map: every writer here takes a
// *shapemap.ShapeMap and a *schema.Schema and produces bytes, never
// mutating either.
package report

import "fmt"

// Format selects the serialization a Write call produces (§4.8, §6).
type Format uint8

const (
	// Compact renders one colored line per (node, shape) pair.
	Compact Format = iota
	// Details renders the full JSON result: every pair, its status,
	// reasons, and error trees.
	Details
	Turtle
	NTriples
	NQuads
	TriG
	N3
	RDFXML
	CSV
	// Minimal renders only the overall pass/fail verdict and counts.
	Minimal
)

func (f Format) String() string {
	switch f {
	case Compact:
		return "compact"
	case Details:
		return "details"
	case Turtle:
		return "turtle"
	case NTriples:
		return "ntriples"
	case NQuads:
		return "nquads"
	case TriG:
		return "trig"
	case N3:
		return "n3"
	case RDFXML:
		return "rdfxml"
	case CSV:
		return "csv"
	case Minimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format name (case-sensitive, as listed by
// String) back to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range []Format{Compact, Details, Turtle, NTriples, NQuads, TriG, N3, RDFXML, CSV, Minimal} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("report: unknown format %q", name)
}

// isRDFFamily reports whether f is one of the RDF triple-serialization
// formats sharing the toRDFTriples step.
func (f Format) isRDFFamily() bool {
	switch f {
	case Turtle, NTriples, NQuads, TriG, N3, RDFXML:
		return true
	default:
		return false
	}
}
