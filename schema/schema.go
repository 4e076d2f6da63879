package schema

// Schema is a compiled, frozen collection of shape expressions indexed by
// ShapeLabelIdx. It is immutable once returned from Builder.Build; callers
// needing a different schema build a new Builder.
type Schema struct {
	labels  []ShapeLabel
	byLabel map[ShapeLabel]ShapeLabelIdx
	exprs   []ShapeExpr
	start   ShapeLabelIdx

	// hasNegCycle and negCycleShapes record the non-fatal outcome of
	// Builder's negation-cycle check (§8 scenario 5): compilation still
	// succeeds, but a schema with hasNegCycle set has no well-defined
	// fixed point and the validation driver must refuse to run it.
	hasNegCycle    bool
	negCycleShapes []ShapeLabelIdx
}

// Lookup resolves a label to its index.
func (s *Schema) Lookup(label ShapeLabel) (ShapeLabelIdx, bool) {
	idx, ok := s.byLabel[label]
	return idx, ok
}

// Label returns the label at idx.
func (s *Schema) Label(idx ShapeLabelIdx) ShapeLabel {
	if !idx.IsValid() || int(idx) >= len(s.labels) {
		return ShapeLabel{}
	}
	return s.labels[idx]
}

// Expr returns the compiled expression at idx.
func (s *Schema) Expr(idx ShapeLabelIdx) (ShapeExpr, bool) {
	if !idx.IsValid() || int(idx) >= len(s.exprs) {
		return nil, false
	}
	return s.exprs[idx], true
}

// Len returns the number of shapes in the table.
func (s *Schema) Len() int { return len(s.exprs) }

// Start returns the schema's start shape, if one was set.
func (s *Schema) Start() (ShapeLabelIdx, bool) {
	if !s.start.IsValid() {
		return NoIdx, false
	}
	return s.start, true
}

// Labels returns every declared label, in table order.
func (s *Schema) Labels() []ShapeLabel {
	out := make([]ShapeLabel, len(s.labels))
	copy(out, s.labels)
	return out
}

// HasNegCycle reports whether Build found a ShapeNot participating in a
// reference cycle. A schema with HasNegCycle has no well-defined fixed
// point; callers must not pass it to validate.Engine.Validate (it refuses
// with NegCycleError).
func (s *Schema) HasNegCycle() bool { return s.hasNegCycle }

// NegCycleShapes returns the indices of every shape found on a negative
// dependency cycle, in detection order. Empty when HasNegCycle is false.
func (s *Schema) NegCycleShapes() []ShapeLabelIdx {
	out := make([]ShapeLabelIdx, len(s.negCycleShapes))
	copy(out, s.negCycleShapes)
	return out
}
