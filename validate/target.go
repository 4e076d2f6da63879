package validate

import (
	"context"
	"fmt"

	"github.com/rudof-project/rudof-sub005/rdf"
)

const (
	rdfType        = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfsSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
)

// TargetKind discriminates the SHACL target selectors a schema's shapes
// declare (§4.6 "Target selection").
type TargetKind uint8

const (
	TargetNode TargetKind = iota
	TargetClass
	TargetSubjectsOf
	TargetObjectsOf
	ImplicitTargetClass
)

// Target is one target declaration attached to a shape.
type Target struct {
	Kind TargetKind
	// Term is the node (TargetNode), class (TargetClass/ImplicitTargetClass),
	// or property (TargetSubjectsOf/TargetObjectsOf) the target selects by.
	Term rdf.Term
}

// SelectNodes evaluates t against graph, returning the set of focus nodes
// it contributes.
func SelectNodes(ctx context.Context, graph rdf.Graph, t Target) ([]rdf.Term, error) {
	switch t.Kind {
	case TargetNode:
		if t.Term.IsBlankNode() {
			return nil, nil // SHACL rejects blank nodes as TargetNode values
		}
		return []rdf.Term{t.Term}, nil

	case TargetClass, ImplicitTargetClass:
		return selectByClass(ctx, graph, t.Term)

	case TargetSubjectsOf:
		return selectSubjectsOf(ctx, graph, t.Term)

	case TargetObjectsOf:
		return selectObjectsOf(ctx, graph, t.Term)

	default:
		return nil, fmt.Errorf("validate: unknown target kind %d", t.Kind)
	}
}

// selectByClass returns every node n with n rdf:type/rdfs:subClassOf* c:
// nodes directly typed c, plus nodes typed any subclass of c, following
// rdfs:subClassOf transitively.
func selectByClass(ctx context.Context, graph rdf.Graph, class rdf.Term) ([]rdf.Term, error) {
	classes, err := subClassClosure(ctx, graph, class)
	if err != nil {
		return nil, err
	}

	var out []rdf.Term
	seen := make(map[rdf.Term]bool)
	for _, c := range classes {
		instances, err := graph.IncomingArcs(ctx, c)
		if err != nil {
			return nil, err
		}
		for _, arc := range instances.Arcs {
			if arc.Predicate.Value() != rdfType {
				continue
			}
			if !seen[arc.Term] {
				seen[arc.Term] = true
				out = append(out, arc.Term)
			}
		}
	}
	return out, nil
}

// subClassClosure returns class plus every class reachable by following
// incoming rdfs:subClassOf arcs (i.e. every descendant class).
func subClassClosure(ctx context.Context, graph rdf.Graph, class rdf.Term) ([]rdf.Term, error) {
	seen := map[rdf.Term]bool{class: true}
	queue := []rdf.Term{class}
	out := []rdf.Term{class}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		incoming, err := graph.IncomingArcs(ctx, cur)
		if err != nil {
			return nil, err
		}
		for _, arc := range incoming.Arcs {
			if arc.Predicate.Value() != rdfsSubClassOf {
				continue
			}
			if !seen[arc.Term] {
				seen[arc.Term] = true
				out = append(out, arc.Term)
				queue = append(queue, arc.Term)
			}
		}
	}
	return out, nil
}

func selectSubjectsOf(ctx context.Context, graph rdf.Graph, predicate rdf.Term) ([]rdf.Term, error) {
	it, err := graph.TriplesMatching(ctx, rdf.Pattern{Predicate: &predicate})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []rdf.Term
	seen := make(map[rdf.Term]bool)
	for {
		tr, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if !seen[tr.Subject] {
			seen[tr.Subject] = true
			out = append(out, tr.Subject)
		}
	}
	return out, nil
}

func selectObjectsOf(ctx context.Context, graph rdf.Graph, predicate rdf.Term) ([]rdf.Term, error) {
	it, err := graph.TriplesMatching(ctx, rdf.Pattern{Predicate: &predicate})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []rdf.Term
	seen := make(map[rdf.Term]bool)
	for {
		tr, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if !seen[tr.Object] {
			seen[tr.Object] = true
			out = append(out, tr.Object)
		}
	}
	return out, nil
}
