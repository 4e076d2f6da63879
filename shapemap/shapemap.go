// Package shapemap implements the shape-map state machine (C6): the table
// of (node, shape) pairs a validation run tracks from Pending through to a
// terminal Conformant or NonConformant status.
package shapemap

import (
	"fmt"
	"sort"

	"github.com/rudof-project/rudof-sub005/rdf"
	"github.com/rudof-project/rudof-sub005/schema"
)

// ValidationStatus is the terminal (or not-yet-terminal) state of a
// (node, shape) pair.
type ValidationStatus uint8

const (
	// Pending means the pair has not yet been evaluated.
	Pending ValidationStatus = iota
	// Conformant means the node was shown to conform to the shape.
	Conformant
	// NonConformant means the node was shown not to conform.
	NonConformant
	// Inconsistent means the pair received conflicting terminal
	// assignments within the same run — an internal-invariant failure
	// per §7, not a normal validation outcome.
	Inconsistent
)

func (s ValidationStatus) String() string {
	switch s {
	case Conformant:
		return "conformant"
	case NonConformant:
		return "nonconformant"
	case Inconsistent:
		return "inconsistent"
	default:
		return "pending"
	}
}

// IsTerminal reports whether s is a status validate will not revisit.
func (s ValidationStatus) IsTerminal() bool {
	return s == Conformant || s == NonConformant || s == Inconsistent
}

// Pair is the key of the shape-map table: a node under test paired with
// the shape label it is checked against.
type Pair struct {
	Node  rdf.Term
	Shape schema.ShapeLabelIdx
}

func (p Pair) String() string {
	return fmt.Sprintf("%s@%s", p.Node, p.Shape)
}

// Entry is one row of the shape map: a pair, its current status, and
// whatever reasons or errors accumulated while reaching it.
type Entry struct {
	Pair    Pair
	Status  ValidationStatus
	Reasons []string
	Errors  []error
}

// InconsistentError is returned by Add* methods when a pair would
// transition between conflicting terminal states.
type InconsistentError struct {
	Pair Pair
	From ValidationStatus
	To   ValidationStatus
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("shapemap: pair %s already %s, cannot also become %s", e.Pair, e.From, e.To)
}

// ShapeMap is the mutable table the validation driver owns for the
// duration of one run. It is not safe for concurrent use; the engine is
// single-threaded per §5.
type ShapeMap struct {
	entries map[Pair]*Entry
	order   []Pair // insertion order, for deterministic iteration (§5)
}

// New creates an empty ShapeMap.
func New() *ShapeMap {
	return &ShapeMap{entries: make(map[Pair]*Entry)}
}

// AddPending inserts a Pending entry iff no entry yet exists for pair.
func (m *ShapeMap) AddPending(pair Pair) {
	if _, ok := m.entries[pair]; ok {
		return
	}
	m.entries[pair] = &Entry{Pair: pair, Status: Pending}
	m.order = append(m.order, pair)
}

// AddConformant marks pair Conformant. If the entry is Pending or absent,
// it transitions to Conformant. If already Conformant, reason is merged
// in. If already NonConformant, the pair becomes Inconsistent and an
// *InconsistentError is returned (§4.7).
func (m *ShapeMap) AddConformant(pair Pair, reason string) error {
	e, ok := m.entries[pair]
	if !ok {
		m.AddPending(pair)
		e = m.entries[pair]
	}
	switch e.Status {
	case Pending:
		e.Status = Conformant
		if reason != "" {
			e.Reasons = append(e.Reasons, reason)
		}
		return nil
	case Conformant:
		if reason != "" {
			e.Reasons = append(e.Reasons, reason)
		}
		return nil
	case NonConformant:
		e.Status = Inconsistent
		return &InconsistentError{Pair: pair, From: NonConformant, To: Conformant}
	default:
		return &InconsistentError{Pair: pair, From: e.Status, To: Conformant}
	}
}

// AddNonConformant marks pair NonConformant, the dual of AddConformant.
func (m *ShapeMap) AddNonConformant(pair Pair, cause error) error {
	e, ok := m.entries[pair]
	if !ok {
		m.AddPending(pair)
		e = m.entries[pair]
	}
	switch e.Status {
	case Pending:
		e.Status = NonConformant
		if cause != nil {
			e.Errors = append(e.Errors, cause)
		}
		return nil
	case NonConformant:
		if cause != nil {
			e.Errors = append(e.Errors, cause)
		}
		return nil
	case Conformant:
		e.Status = Inconsistent
		return &InconsistentError{Pair: pair, From: Conformant, To: NonConformant}
	default:
		return &InconsistentError{Pair: pair, From: e.Status, To: NonConformant}
	}
}

// Get returns the entry for pair, if any.
func (m *ShapeMap) Get(pair Pair) (*Entry, bool) {
	e, ok := m.entries[pair]
	return e, ok
}

// PendingPairs returns every pair still in Pending status, in insertion
// order, for the fixed-point driver's work queue.
func (m *ShapeMap) PendingPairs() []Pair {
	var out []Pair
	for _, p := range m.order {
		if m.entries[p].Status == Pending {
			out = append(out, p)
		}
	}
	return out
}

// ResolveResidualPending converts every still-Pending entry to
// NonConformant(FailedPending), the terminal sweep §4.7 step 2 performs
// once the fixed-point loop's step budget or work queue is exhausted.
func (m *ShapeMap) ResolveResidualPending(err error) {
	for _, p := range m.order {
		e := m.entries[p]
		if e.Status == Pending {
			e.Status = NonConformant
			if err != nil {
				e.Errors = append(e.Errors, err)
			}
		}
	}
}

// NodesConform returns every node currently Conformant with shape, in
// stable order.
func (m *ShapeMap) NodesConform(shape schema.ShapeLabelIdx) []rdf.Term {
	var out []rdf.Term
	for _, p := range m.order {
		if p.Shape != shape {
			continue
		}
		if m.entries[p].Status == Conformant {
			out = append(out, p.Node)
		}
	}
	return out
}

// Entries returns every entry in insertion order, which is stable and
// deterministic. SortedByPair gives a lexicographic (node, shape) order.
func (m *ShapeMap) Entries() []*Entry {
	out := make([]*Entry, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, m.entries[p])
	}
	return out
}

// SortedByPair returns every entry sorted lexicographically by (node
// string, shape index), for callers that want a canonical order
// independent of insertion history.
func (m *ShapeMap) SortedByPair() []*Entry {
	out := m.Entries()
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Pair, out[j].Pair
		if pi.Node.String() != pj.Node.String() {
			return pi.Node.String() < pj.Node.String()
		}
		return pi.Shape < pj.Shape
	})
	return out
}

// Len returns the number of pairs tracked.
func (m *ShapeMap) Len() int { return len(m.entries) }

// OK reports whether every entry reached a non-Inconsistent terminal
// status. Call only after the driver's fixed point has finished; while
// pairs remain Pending, OK is not meaningful.
func (m *ShapeMap) OK() bool {
	for _, e := range m.entries {
		if e.Status == Inconsistent {
			return false
		}
	}
	return true
}
