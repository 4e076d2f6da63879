package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudof-project/rudof-sub005/rdf"
)

// ErrPathNotImplemented is returned for SHACL path forms the native engine
// does not evaluate (§ "Path evaluation (SHACL)": "Non-IRI paths in the
// native engine may return NotImplemented; the SPARQL engine translates
// paths to SPARQL property-path syntax").
var ErrPathNotImplemented = errors.New("validate: path form not implemented by native engine")

// PathKind discriminates the SHACL property-path forms.
type PathKind uint8

const (
	// PathIRI is a single forward predicate step.
	PathIRI PathKind = iota
	PathInverse
	PathSequence
	PathAlternative
	PathZeroOrOne
	PathZeroOrMore
	PathOneOrMore
)

// Path is a compiled SHACL property path expression. IRI paths resolve to
// one forward step; Sub/Seq/Alt compose the remaining forms recursively.
type Path struct {
	Kind PathKind
	IRI  rdf.Term   // set for PathIRI
	Sub  *Path      // set for Inverse/ZeroOrOne/ZeroOrMore/OneOrMore
	Seq  []Path     // set for PathSequence
	Alt  []Path     // set for PathAlternative
}

// EvaluatePath walks path from focus and returns the set of nodes reached
// (§ "Path evaluation (SHACL)"). The result has no duplicates but is not
// otherwise ordered.
func EvaluatePath(ctx context.Context, graph rdf.Graph, path Path, focus rdf.Term) ([]rdf.Term, error) {
	switch path.Kind {
	case PathIRI:
		return evalForwardStep(ctx, graph, path.IRI, focus)

	case PathInverse:
		if path.Sub == nil {
			return nil, fmt.Errorf("validate: inverse path missing sub-path")
		}
		return evalInverse(ctx, graph, *path.Sub, focus)

	case PathSequence:
		return evalSequence(ctx, graph, path.Seq, focus)

	case PathAlternative:
		return evalAlternative(ctx, graph, path.Alt, focus)

	case PathZeroOrOne:
		return evalZeroOrOne(ctx, graph, path.Sub, focus)

	case PathZeroOrMore:
		return evalClosure(ctx, graph, path.Sub, focus, true)

	case PathOneOrMore:
		return evalClosure(ctx, graph, path.Sub, focus, false)

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrPathNotImplemented, path.Kind)
	}
}

func evalForwardStep(ctx context.Context, graph rdf.Graph, predicate rdf.Term, focus rdf.Term) ([]rdf.Term, error) {
	n, err := graph.OutgoingArcs(ctx, focus)
	if err != nil {
		return nil, err
	}
	var out []rdf.Term
	for _, a := range n.Arcs {
		if a.Predicate == predicate {
			out = append(out, a.Term)
		}
	}
	return out, nil
}

// evalInverse applies sub "backwards" by reading focus's incoming arcs. Only
// a single IRI step is supported; the inverse of any other path kind
// returns ErrPathNotImplemented.
func evalInverse(ctx context.Context, graph rdf.Graph, sub Path, focus rdf.Term) ([]rdf.Term, error) {
	if sub.Kind != PathIRI {
		return nil, fmt.Errorf("%w: inverse of a composed path", ErrPathNotImplemented)
	}
	n, err := graph.IncomingArcs(ctx, focus)
	if err != nil {
		return nil, err
	}
	var out []rdf.Term
	for _, a := range n.Arcs {
		if a.Predicate == sub.IRI {
			out = append(out, a.Term)
		}
	}
	return out, nil
}

func evalSequence(ctx context.Context, graph rdf.Graph, steps []Path, focus rdf.Term) ([]rdf.Term, error) {
	frontier := []rdf.Term{focus}
	for _, step := range steps {
		next, err := evalFromSet(ctx, graph, step, frontier)
		if err != nil {
			return nil, err
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return frontier, nil
}

func evalAlternative(ctx context.Context, graph rdf.Graph, alts []Path, focus rdf.Term) ([]rdf.Term, error) {
	seen := make(map[rdf.Term]bool)
	var out []rdf.Term
	for _, alt := range alts {
		res, err := EvaluatePath(ctx, graph, alt, focus)
		if err != nil {
			return nil, err
		}
		for _, t := range res {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func evalZeroOrOne(ctx context.Context, graph rdf.Graph, sub *Path, focus rdf.Term) ([]rdf.Term, error) {
	seen := map[rdf.Term]bool{focus: true}
	out := []rdf.Term{focus}
	if sub == nil {
		return out, nil
	}
	res, err := EvaluatePath(ctx, graph, *sub, focus)
	if err != nil {
		return nil, err
	}
	for _, t := range res {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, nil
}

// evalClosure computes the transitive closure of sub starting at focus.
// includeZero also includes focus itself (zero-or-more); otherwise the
// result starts at one step away (one-or-more).
func evalClosure(ctx context.Context, graph rdf.Graph, sub *Path, focus rdf.Term, includeZero bool) ([]rdf.Term, error) {
	if sub == nil {
		return nil, fmt.Errorf("validate: repeat path missing sub-path")
	}
	seen := make(map[rdf.Term]bool)
	var out []rdf.Term
	if includeZero {
		seen[focus] = true
		out = append(out, focus)
	}

	queue := []rdf.Term{focus}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		next, err := EvaluatePath(ctx, graph, *sub, cur)
		if err != nil {
			return nil, err
		}
		for _, t := range next {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
				queue = append(queue, t)
			}
		}
	}
	return out, nil
}

func evalFromSet(ctx context.Context, graph rdf.Graph, path Path, nodes []rdf.Term) ([]rdf.Term, error) {
	seen := make(map[rdf.Term]bool)
	var out []rdf.Term
	for _, n := range nodes {
		res, err := EvaluatePath(ctx, graph, path, n)
		if err != nil {
			return nil, err
		}
		for _, t := range res {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out, nil
}
