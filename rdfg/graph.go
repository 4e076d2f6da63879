// Package rdfg implements an in-memory RDF backend satisfying the rdf.Graph
// capability set (C1). It indexes triples the way the teacher's instance
// graph indexes instances: by subject and by object, then lets the predicate
// dimension fall out of a per-subject slice scan, which keeps the data
// structure simple while outgoing_arcs/closed-shape checks stay O(degree).
package rdfg

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rudof-project/rudof-sub005/internal/trace"
	"github.com/rudof-project/rudof-sub005/rdf"
)

// errNilContext is returned when a caller passes a nil context to an
// operation that requires one (matches the teacher's nil-receiver/nil-arg
// guard idiom rather than panicking).
var errNilContext = errors.New("rdfg: nil context")

// Option configures Graph construction.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger enables structured debug logging for graph operations.
// Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Graph is a concurrency-safe in-memory store of RDF triples.
//
// Graph is safe for concurrent use. Reads (TriplesMatching, OutgoingArcs,
// IncomingArcs) may run concurrently with each other and are additionally
// safe concurrently with Add.
type Graph struct {
	cfg config
	mu  sync.RWMutex

	// bySubject indexes every triple by subject term.
	bySubject map[rdf.Term][]rdf.Triple
	// byObject indexes every triple by object term, for IncomingArcs.
	byObject map[rdf.Term][]rdf.Triple
	all      []rdf.Triple
}

// New creates an empty in-memory graph.
func New(opts ...Option) *Graph {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		cfg:       cfg,
		bySubject: make(map[rdf.Term][]rdf.Triple),
		byObject:  make(map[rdf.Term][]rdf.Triple),
	}
}

// Add inserts a triple into the graph. Add is idempotent: adding the same
// triple twice leaves the graph, including Len, unchanged beyond the first
// insertion.
func (g *Graph) Add(t rdf.Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, existing := range g.bySubject[t.Subject] {
		if existing == t {
			return
		}
	}

	g.all = append(g.all, t)
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], t)
	g.byObject[t.Object] = append(g.byObject[t.Object], t)

	if g.cfg.logger != nil {
		g.cfg.logger.Debug("rdfg.add", slog.String("subject", t.Subject.String()),
			slog.String("predicate", t.Predicate.String()))
	}
}

// Len returns the number of distinct triples added.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.all)
}

// TriplesMatching implements rdf.Graph.
func (g *Graph) TriplesMatching(ctx context.Context, pattern rdf.Pattern) (rdf.TripleIterator, error) {
	if ctx == nil {
		return nil, errNilContext
	}
	op := trace.Begin(ctx, g.cfg.logger, "rudof.rdfg.triplesMatching")
	defer op.End(nil)

	g.mu.RLock()
	defer g.mu.RUnlock()

	var matched []rdf.Triple
	// A bound subject narrows the scan to that subject's triples; this is
	// the common case driven by outgoing-arc style lookups.
	if pattern.Subject != nil {
		for _, t := range g.bySubject[*pattern.Subject] {
			if pattern.Matches(t) {
				matched = append(matched, t)
			}
		}
	} else {
		for _, t := range g.all {
			if pattern.Matches(t) {
				matched = append(matched, t)
			}
		}
	}
	return &sliceIterator{triples: matched}, nil
}

// OutgoingArcs implements rdf.Graph.
func (g *Graph) OutgoingArcs(ctx context.Context, subject rdf.Term) (rdf.Neighborhood, error) {
	if ctx == nil {
		return rdf.Neighborhood{}, errNilContext
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n rdf.Neighborhood
	for _, t := range g.bySubject[subject] {
		n.Arcs = append(n.Arcs, rdf.Arc{Predicate: t.Predicate, Term: t.Object})
	}
	return n, nil
}

// IncomingArcs implements rdf.Graph.
func (g *Graph) IncomingArcs(ctx context.Context, object rdf.Term) (rdf.Neighborhood, error) {
	if ctx == nil {
		return rdf.Neighborhood{}, errNilContext
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n rdf.Neighborhood
	for _, t := range g.byObject[object] {
		n.Arcs = append(n.Arcs, rdf.Arc{Predicate: t.Predicate, Term: t.Subject})
	}
	return n, nil
}

// OutgoingArcsFromList implements rdf.Graph, splitting subject's outgoing
// neighborhood into the portion whose predicate is in allowedPreds and the
// remainder — the shape of input a closed-shape check needs (§4.6 step 4).
func (g *Graph) OutgoingArcsFromList(ctx context.Context, subject rdf.Term, allowedPreds []rdf.Term) (rdf.Neighborhood, []rdf.Term, error) {
	if ctx == nil {
		return rdf.Neighborhood{}, nil, errNilContext
	}
	allowed := make(map[rdf.Term]bool, len(allowedPreds))
	for _, p := range allowedPreds {
		allowed[p] = true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var inList rdf.Neighborhood
	remainderSeen := make(map[rdf.Term]bool)
	var remainder []rdf.Term
	for _, t := range g.bySubject[subject] {
		if allowed[t.Predicate] {
			inList.Arcs = append(inList.Arcs, rdf.Arc{Predicate: t.Predicate, Term: t.Object})
			continue
		}
		if !remainderSeen[t.Predicate] {
			remainderSeen[t.Predicate] = true
			remainder = append(remainder, t.Predicate)
		}
	}
	return inList, remainder, nil
}

type sliceIterator struct {
	triples []rdf.Triple
	pos     int
}

func (it *sliceIterator) Next(ctx context.Context) (rdf.Triple, bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return rdf.Triple{}, false, err
		}
	}
	if it.pos >= len(it.triples) {
		return rdf.Triple{}, false, nil
	}
	t := it.triples[it.pos]
	it.pos++
	return t, true, nil
}

func (it *sliceIterator) Close() error { return nil }
