package shapemap

import (
	"fmt"
	"strings"

	"github.com/rudof-project/rudof-sub005/rdf"
	"github.com/rudof-project/rudof-sub005/schema"
)

// ParsedAssociation is one (node, shape) request read from an input
// document, before it is resolved against a compiled Schema and turned
// into a Pair (§6: compact textual form, JSON, and CSV shape-map inputs).
type ParsedAssociation struct {
	Node      string
	ShapeName string
	// Start is true when the shape side names the schema's declared start
	// shape rather than a label (§4.6 ShapeSelector: "shape label or
	// Start").
	Start bool
}

// parseNodeTerm turns a node token into an rdf.Term: "_:label" is a blank
// node, anything else is treated as an IRI. Quoted literal nodes are not
// part of any shape-map input format this module supports.
func parseNodeTerm(token string) rdf.Term {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "_:") {
		return rdf.NewBlankNode(strings.TrimPrefix(token, "_:"))
	}
	token = strings.TrimPrefix(token, "<")
	token = strings.TrimSuffix(token, ">")
	return rdf.NewIRI(token)
}

// Resolve looks up pa's shape side against schema and builds a Pair
// (§4.6: ShapeSelector is "shape label or Start").
func (pa ParsedAssociation) Resolve(s *schema.Schema) (Pair, error) {
	node := parseNodeTerm(pa.Node)

	if pa.Start {
		idx, ok := s.Start()
		if !ok {
			return Pair{}, fmt.Errorf("shapemap: association %q@START but schema has no start shape", pa.Node)
		}
		return Pair{Node: node, Shape: idx}, nil
	}

	label := schema.NewShapeLabel(parseNodeTerm(pa.ShapeName))
	idx, ok := s.Lookup(label)
	if !ok {
		return Pair{}, fmt.Errorf("shapemap: unknown shape label %q", pa.ShapeName)
	}
	return Pair{Node: node, Shape: idx}, nil
}

// ResolveAll resolves every parsed association and seeds m with
// AddPending for each, in document order.
func ResolveAll(m *ShapeMap, s *schema.Schema, parsed []ParsedAssociation) error {
	for _, pa := range parsed {
		pair, err := pa.Resolve(s)
		if err != nil {
			return err
		}
		m.AddPending(pair)
	}
	return nil
}
