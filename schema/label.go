// Package schema implements the compiled shape schema IR (C5): shape
// expressions and triple expressions resolved from shape labels into a
// flat, indexed table ready for the validation driver to walk.
package schema

import (
	"fmt"

	"github.com/rudof-project/rudof-sub005/rdf"
)

// ShapeLabel is a shape's external identity: an IRI or blank node term,
// exactly as it appears in the schema source. ShapeLabel is comparable and
// safe as a map key.
type ShapeLabel struct {
	term rdf.Term
}

// NewShapeLabel wraps an RDF term as a shape label.
func NewShapeLabel(term rdf.Term) ShapeLabel { return ShapeLabel{term: term} }

// Term returns the underlying RDF term.
func (l ShapeLabel) Term() rdf.Term { return l.term }

// String renders the label the way its term renders.
func (l ShapeLabel) String() string { return l.term.String() }

// IsZero reports whether l is the zero ShapeLabel.
func (l ShapeLabel) IsZero() bool { return l.term == rdf.Term{} }

// ShapeLabelIdx is the position of a shape's compiled expression in a
// Schema's table — the handle every Ref, Extends entry, and validation
// obligation carries instead of repeating the label term.
type ShapeLabelIdx int

// NoIdx is the sentinel for "no shape", used by optional references
// (NodeConstraint has no value expression to point at, for instance).
const NoIdx ShapeLabelIdx = -1

// IsValid reports whether idx denotes a real table slot.
func (idx ShapeLabelIdx) IsValid() bool { return idx >= 0 }

func (idx ShapeLabelIdx) String() string {
	if idx == NoIdx {
		return "<none>"
	}
	return fmt.Sprintf("#%d", int(idx))
}
